// Package currencyutils provides currency symbol tables and amount
// normalization shared by the extractor and the display layer.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/subscan/internal/models"
)

// SymbolCode is one entry of the symbol scan table.
type SymbolCode struct {
	Symbol string
	Code   string
}

// SymbolTable maps currency symbols to ISO codes in scan order.
// Multi-character symbols come before the bare "$" so that "HK$9.99" is not
// read as a USD amount. Shared symbols resolve to their most common code
// (¥ to CNY, kr to SEK); context reassigns them during extraction.
var SymbolTable = []SymbolCode{
	{"HK$", "HKD"}, {"NT$", "TWD"}, {"A$", "AUD"}, {"C$", "CAD"},
	{"S$", "SGD"}, {"MX$", "MXN"}, {"R$", "BRL"},
	{"$", "USD"}, {"€", "EUR"}, {"£", "GBP"}, {"¥", "CNY"},
	{"₩", "KRW"}, {"₹", "INR"}, {"₽", "RUB"}, {"฿", "THB"},
	{"kr", "SEK"}, {"CHF", "CHF"},
}

// NormalizeAmount converts a comma decimal separator to a period ("9,99" to
// "9.99"). OCR text carries no thousands separators worth preserving.
func NormalizeAmount(amount string) string {
	return strings.ReplaceAll(amount, ",", ".")
}

// ParseAmount parses a normalized amount string into a decimal value.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(NormalizeAmount(strings.TrimSpace(amount)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amount, err)
	}
	return d, nil
}

// IsKnownCode reports whether code is one of the supported ISO currency codes.
func IsKnownCode(code string) bool {
	code = strings.ToUpper(code)
	for _, c := range models.Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// FormatAmount renders an amount with its currency symbol: "$9.99".
// Unknown currencies fall back to the code itself: "XYZ9.99".
func FormatAmount(amount decimal.Decimal, currency string) string {
	symbol, ok := models.CurrencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = currency
	}
	return symbol + amount.StringFixed(2)
}

// FormatAmountShort renders an amount omitting decimals when it is a whole
// number: "$9" or "$9.99".
func FormatAmountShort(amount decimal.Decimal, currency string) string {
	symbol, ok := models.CurrencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = currency
	}
	if amount.Equal(amount.Truncate(0)) {
		return symbol + amount.StringFixed(0)
	}
	return symbol + amount.StringFixed(2)
}
