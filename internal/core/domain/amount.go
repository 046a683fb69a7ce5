package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount turns user input into a decimal. Anything non-numeric
// becomes zero; the sign is kept so callers can decide whether to clamp.
func CoerceAmount(raw string) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// IsPlaceholder reports whether a select value is still at its prompt
// option ("Select sale type...", "Select rate...") or blank.
func IsPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if !strings.HasPrefix(s, "Select ") {
		return false
	}
	return strings.HasSuffix(s, "...") || strings.HasSuffix(s, "…")
}

// Placeholder options shown by the invoice form before a value is picked.
const (
	PlaceholderSaleType      = "Select sale type..."
	PlaceholderUOM           = "Select UOM..."
	PlaceholderRate          = "Select rate..."
	PlaceholderSROSchedule   = "Select SRO schedule..."
	PlaceholderSROItemSerial = "Select SRO item serial no..."
)

// StripPlaceholder returns "" for placeholder values, s otherwise.
func StripPlaceholder(s string) string {
	if IsPlaceholder(s) {
		return ""
	}
	return strings.TrimSpace(s)
}
