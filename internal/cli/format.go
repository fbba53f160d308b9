// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a monetary amount with a currency symbol, comma
// separators and two decimal places. e.g., 1234567.5 -> "$1,234,567.50"
func FormatMoney(amount decimal.Decimal, currency string) string {
	neg := amount.IsNegative()
	abs := amount.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(abs, ".")
	out := currency + groupThousands(whole) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatWeight formats a bucket percentage weight. Whole weights drop the
// fraction. e.g., 25 -> "25%", 12.5 -> "12.5%"
func FormatWeight(w float64) string {
	if w == float64(int64(w)) {
		return fmt.Sprintf("%d%%", int64(w))
	}
	return fmt.Sprintf("%.1f%%", w)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMonths formats a month count as a rough duration.
// e.g., 5 -> "5mo", 14 -> "1y 2mo"
func FormatMonths(months int) string {
	if months <= 0 {
		return "now"
	}
	years := months / 12
	rem := months % 12
	if years > 0 && rem > 0 {
		return fmt.Sprintf("%dy %dmo", years, rem)
	}
	if years > 0 {
		return fmt.Sprintf("%dy", years)
	}
	return fmt.Sprintf("%dmo", rem)
}
