package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a named monetary account owned by exactly one bucket.
type Account struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ParseAmount converts raw user input to a non-negative decimal amount.
// Malformed or negative input degrades to zero so the ledger always stays in a
// valid numeric state.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
