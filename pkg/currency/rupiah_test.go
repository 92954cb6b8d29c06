package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"backoffice-dashboard/pkg/currency"
)

func TestFormat(t *testing.T) {
	tcs := map[string]struct {
		amount int64
		want   string
	}{
		"zero":      {amount: 0, want: "Rp0"},
		"hundreds":  {amount: 500, want: "Rp500"},
		"thousands": {amount: 5000, want: "Rp5.000"},
		"millions":  {amount: 1250000, want: "Rp1.250.000"},
		"negative":  {amount: -7500, want: "-Rp7.500"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, currency.Format(tc.amount))
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "Rp15.000", currency.FormatDecimal(decimal.RequireFromString("15000.00")))
	assert.Equal(t, "Rp10.001", currency.FormatDecimal(decimal.RequireFromString("10000.50")))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "5000", currency.Digits("Rp 5.000"))
	assert.Equal(t, "5000", currency.Digits("Rp 5.0a00"))
	assert.Equal(t, "", currency.Digits("Rp "))
}

func TestFormatInput(t *testing.T) {
	assert.Equal(t, "Rp 5.000", currency.FormatInput("5000"))
	assert.Equal(t, "Rp 5.000", currency.FormatInput("Rp 5.000"))
	assert.Equal(t, "", currency.FormatInput(""))
	assert.Equal(t, "", currency.FormatInput("abc"))
	assert.Equal(t, "Rp 0", currency.FormatInput("0"))
	assert.Equal(t, "Rp 0", currency.FormatInput("Rp 0"))
	assert.Equal(t, "Rp 99999999999999999999", currency.FormatInput("99999999999999999999"))
}
