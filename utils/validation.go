// utils/validation.go
package utils

import (
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// RuleKind selects how a FieldRule checks its raw value.
type RuleKind int

const (
	// RequiredString accepts any non-empty string.
	RequiredString RuleKind = iota
	// PositiveNumber coerces the value to a decimal strictly greater than zero.
	PositiveNumber
	// OneOf accepts exactly one of the rule's Options.
	OneOf
)

// FieldRule is one declarative constraint on a submitted form field.
type FieldRule struct {
	Field   string
	Kind    RuleKind
	Options []string
	Message string
}

// FieldErrors maps a field name to its human-readable messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Invoice statuses accepted by the dashboard.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// InvoiceSchema describes the fields of an invoice form.
var InvoiceSchema = []FieldRule{
	{Field: "customerId", Kind: RequiredString, Message: "Please select a customer."},
	{Field: "amount", Kind: PositiveNumber, Message: "Please enter an amount greater than $0."},
	{Field: "status", Kind: OneOf, Options: []string{StatusPending, StatusPaid}, Message: "Please select an invoice status."},
}

// InvoiceInput is a form that passed InvoiceSchema.
type InvoiceInput struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     string
}

// Validate evaluates rules against raw form values. A key missing from
// form is treated as an absent field. The returned map holds the coerced
// value of every field that passed.
func Validate(rules []FieldRule, form map[string]string) (map[string]any, FieldErrors) {
	values := make(map[string]any, len(rules))
	errs := FieldErrors{}

	for _, rule := range rules {
		raw, present := form[rule.Field]
		switch rule.Kind {
		case RequiredString:
			if !present || raw == "" {
				errs.add(rule.Field, rule.Message)
				continue
			}
			values[rule.Field] = raw
		case PositiveNumber:
			amount, ok := coercePositive(raw, present)
			if !ok {
				errs.add(rule.Field, rule.Message)
				continue
			}
			values[rule.Field] = amount
		case OneOf:
			if !present || !slices.Contains(rule.Options, raw) {
				errs.add(rule.Field, rule.Message)
				continue
			}
			values[rule.Field] = raw
		}
	}

	if len(errs) == 0 {
		return values, nil
	}
	return values, errs
}

// ValidateInvoice parses an invoice form into a typed InvoiceInput.
func ValidateInvoice(form map[string]string) (InvoiceInput, FieldErrors) {
	values, errs := Validate(InvoiceSchema, form)
	if errs != nil {
		return InvoiceInput{}, errs
	}
	return InvoiceInput{
		CustomerID: values["customerId"].(string),
		Amount:     values["amount"].(decimal.Decimal),
		Status:     values["status"].(string),
	}, nil
}

// coercePositive accepts amounts that convert to between one cent and
// MaxMinorUnits, so a stored amount is never zero and never overflows.
func coercePositive(raw string, present bool) (decimal.Decimal, bool) {
	if !present {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, false
	}
	if !amount.IsPositive() || !FitsMinorUnits(amount) {
		return decimal.Zero, false
	}
	return amount, true
}

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks an E.164-style number, ignoring spaces, dashes and
// parentheses.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phonePattern.MatchString(cleaned)
}
