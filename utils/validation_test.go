package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const amountMsg = "Please enter an amount greater than $0."

func form(amount, status string) map[string]string {
	return map[string]string{
		"customerId": "3958dc9e-742f-4377-85e9-fec4b6a6442a",
		"amount":     amount,
		"status":     status,
	}
}

func TestValidateInvoice_Valid(t *testing.T) {
	input, errs := ValidateInvoice(form("0.01", "pending"))
	require.Nil(t, errs)
	assert.Equal(t, "3958dc9e-742f-4377-85e9-fec4b6a6442a", input.CustomerID)
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("0.01")))
	assert.Equal(t, StatusPending, input.Status)

	_, errs = ValidateInvoice(form("5", "paid"))
	assert.Nil(t, errs)
}

func TestValidateInvoice_Amount(t *testing.T) {
	for _, amount := range []string{"0", "-5", "", "abc", "0.001"} {
		_, errs := ValidateInvoice(form(amount, "paid"))
		require.NotNil(t, errs, "amount %q", amount)
		assert.Equal(t, []string{amountMsg}, errs["amount"], "amount %q", amount)
	}

	_, errs := ValidateInvoice(form(" 12.5 ", "paid"))
	assert.Nil(t, errs, "surrounding whitespace is ignored")
}

func TestValidateInvoice_AmountOverflow(t *testing.T) {
	input, errs := ValidateInvoice(form("21474836.47", "paid"))
	require.Nil(t, errs)
	assert.Equal(t, int64(MaxMinorUnits), ToMinorUnits(input.Amount))

	for _, amount := range []string{"21474836.48", "184467440737095517.16", "100000000000000000"} {
		_, errs := ValidateInvoice(form(amount, "paid"))
		require.NotNil(t, errs, "amount %q", amount)
		assert.Equal(t, []string{amountMsg}, errs["amount"], "amount %q", amount)
	}
}

func TestValidateInvoice_Status(t *testing.T) {
	_, errs := ValidateInvoice(form("5", "cancelled"))
	assert.Equal(t, []string{"Please select an invoice status."}, errs["status"])

	_, errs = ValidateInvoice(form("5", "PAID"))
	assert.NotNil(t, errs)
}

func TestValidateInvoice_MissingFields(t *testing.T) {
	_, errs := ValidateInvoice(map[string]string{})
	assert.Equal(t, FieldErrors{
		"customerId": {"Please select a customer."},
		"amount":     {amountMsg},
		"status":     {"Please select an invoice status."},
	}, errs)

	_, errs = ValidateInvoice(form("5", "paid"))
	assert.Nil(t, errs)

	f := form("5", "paid")
	f["customerId"] = ""
	_, errs = ValidateInvoice(f)
	assert.Equal(t, []string{"Please select a customer."}, errs["customerId"])
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+1 (555) 010-0199"))
	assert.True(t, ValidatePhone("447700900123"))
	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("+0123"))
	assert.False(t, ValidatePhone("call me"))
}
