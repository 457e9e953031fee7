package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxMinorUnits is the largest amount the invoices.amount INT column holds.
const MaxMinorUnits = math.MaxInt32

var hundred = decimal.NewFromInt(100)

// FitsMinorUnits reports whether amount, in cents, is within 1..MaxMinorUnits.
func FitsMinorUnits(amount decimal.Decimal) bool {
	cents := amount.Mul(hundred).Round(0)
	return cents.GreaterThanOrEqual(decimal.NewFromInt(1)) && cents.LessThanOrEqual(decimal.NewFromInt(MaxMinorUnits))
}

// ToMinorUnits converts a dollar amount to integer cents, rounding to the
// nearest cent (half away from zero). Callers bound amount with
// FitsMinorUnits first.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits is the inverse of ToMinorUnits.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
