package domain

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// RateKind tells how a line item's rate is applied when deriving sales tax.
type RateKind int

const (
	RateUnset RateKind = iota
	RatePercentage
	RateFixedAmount
)

func (k RateKind) String() string {
	switch k {
	case RatePercentage:
		return "PERCENTAGE"
	case RateFixedAmount:
		return "FIXED_AMOUNT"
	default:
		return "UNSET"
	}
}

var hundred = decimal.NewFromInt(100)

// RateValue is the parsed form of the free-text rate field.
// The zero value is an unset rate.
type RateValue struct {
	kind  RateKind
	value decimal.Decimal
}

// Percentage builds a percentage rate, e.g. 18 for "18.00%".
func Percentage(p decimal.Decimal) RateValue {
	return RateValue{kind: RatePercentage, value: nonNegative(p)}
}

// FixedAmount builds a flat amount rate.
func FixedAmount(a decimal.Decimal) RateValue {
	return RateValue{kind: RateFixedAmount, value: nonNegative(a)}
}

// UnsetRate is the rate of an item whose rate has not been selected.
func UnsetRate() RateValue {
	return RateValue{}
}

func (r RateValue) Kind() RateKind         { return r.kind }
func (r RateValue) Value() decimal.Decimal { return r.value }
func (r RateValue) IsSet() bool            { return r.kind != RateUnset }

// Equal compares kind and magnitude.
func (r RateValue) Equal(o RateValue) bool {
	return r.kind == o.kind && r.value.Equal(o.value)
}

func (r RateValue) String() string {
	switch r.kind {
	case RatePercentage:
		return r.value.String() + "%"
	case RateFixedAmount:
		return r.value.String()
	default:
		return ""
	}
}

// ParseRate classifies a raw rate string. It never fails: malformed
// magnitudes degrade to zero.
//
//	"18.00%"         -> Percentage(18)
//	"Select rate..." -> Unset
//	"Rs.130"         -> FixedAmount(130)
//	"Exempt"         -> FixedAmount(0)
func ParseRate(raw string) RateValue {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, "%") {
		return Percentage(leadingDecimal(strings.TrimSuffix(s, "%")))
	}
	if IsPlaceholder(s) {
		return UnsetRate()
	}
	return FixedAmount(leadingDecimal(stripCurrencyPrefix(s)))
}

// stripCurrencyPrefix drops a leading currency marker such as "Rs.", "Rs " or "$".
func stripCurrencyPrefix(s string) string {
	runes := []rune(strings.TrimSpace(s))
	i := 0
	for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsSymbol(runes[i])) {
		i++
	}
	if i == 0 {
		return string(runes)
	}
	for i < len(runes) && (runes[i] == '.' || runes[i] == ':' || unicode.IsSpace(runes[i])) {
		i++
	}
	return string(runes[i:])
}

// leadingDecimal parses the longest numeric prefix of s ("60/kg" -> 60).
// Thousands separators are ignored. Returns zero when no digits are found.
func leadingDecimal(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	var b strings.Builder
	digits := 0
	seenPoint := false
	for i, r := range s {
		switch {
		case (r == '-' || r == '+') && i == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == '.' && !seenPoint:
			if digits == 0 {
				b.WriteRune('0')
			}
			b.WriteRune(r)
			seenPoint = true
		default:
			return parseDigits(b.String(), digits)
		}
	}
	return parseDigits(b.String(), digits)
}

func parseDigits(s string, digits int) decimal.Decimal {
	if digits == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(s, "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}
