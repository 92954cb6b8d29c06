// Package currency formats whole rupiah amounts the way the Indonesian locale does.
package currency

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const symbol = "Rp"

var printer = message.NewPrinter(language.Indonesian)

// Format renders amount as table currency, e.g. 5000 -> "Rp5.000".
func Format(amount int64) string {
	if amount < 0 {
		return "-" + symbol + printer.Sprintf("%d", -amount)
	}
	return symbol + printer.Sprintf("%d", amount)
}

// FormatDecimal rounds d to whole rupiah before formatting.
func FormatDecimal(d decimal.Decimal) string {
	return Format(d.Round(0).IntPart())
}

// Digits keeps only the digits of raw, which is how the price input is read back.
func Digits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// FormatInput renders the price input value: "5000" -> "Rp 5.000", "0" -> "Rp 0", "" -> "".
// Digits too long for an int64 are shown ungrouped so the input never loses them.
func FormatInput(digits string) string {
	digits = Digits(digits)
	if digits == "" {
		return ""
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return symbol + " " + digits
	}
	return symbol + " " + printer.Sprintf("%d", n)
}
