package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount in cents as a Brazilian Real string, e.g.
// 50 -> "R$ 0,50", 123456 -> "R$ 1.234,56". Used for user-facing messages
// about denominations.
func FormatBRL(cents int64) string {
	amount := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	fixed := amount.StringFixed(2) // e.g. "1234.56"

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	// Insert '.' thousands separators into the integer part.
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
