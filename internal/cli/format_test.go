package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-42", "-$42.00"},
	}

	for _, tc := range cases {
		got := FormatMoney(decimal.RequireFromString(tc.amount), "$")
		if got != tc.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatWeight(t *testing.T) {
	if got := FormatWeight(25); got != "25%" {
		t.Errorf("FormatWeight(25) = %q, want 25%%", got)
	}
	if got := FormatWeight(12.5); got != "12.5%" {
		t.Errorf("FormatWeight(12.5) = %q, want 12.5%%", got)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q, want 1,234,567", got)
	}
	if got := FormatNumber(-999); got != "-999" {
		t.Errorf("FormatNumber = %q, want -999", got)
	}
}

func TestFormatMonths(t *testing.T) {
	cases := []struct {
		months int
		want   string
	}{
		{0, "now"},
		{5, "5mo"},
		{12, "1y"},
		{14, "1y 2mo"},
	}

	for _, tc := range cases {
		if got := FormatMonths(tc.months); got != tc.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tc.months, got, tc.want)
		}
	}
}
