package domain

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	CurrencyPKR = "PKR"
	CurrencyUSD = "USD"
)

// Currency is a display currency the application can format amounts in.
type Currency struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// SupportedCurrencies lists display currencies; the first is the default.
var SupportedCurrencies = []Currency{
	{CurrencyCode: CurrencyPKR, Symbol: "Rs.", Name: "Pakistani Rupee", Precision: 2},
	{CurrencyCode: CurrencyUSD, Symbol: "$", Name: "US Dollar", Precision: 2},
}

// CurrencyDisplay is what the UI shows next to amounts.
type CurrencyDisplay struct {
	Symbol       string `json:"symbol"`
	IsoLikeLabel string `json:"isoLikeLabel"`
}

// ResolveSymbol maps a stored currency preference to its display form.
// Any preference mentioning USD selects dollars; everything else, including
// an empty preference, selects rupees.
func ResolveSymbol(preference string) CurrencyDisplay {
	c := SupportedCurrencies[0]
	if strings.Contains(strings.ToUpper(preference), CurrencyUSD) {
		c = SupportedCurrencies[1]
	}
	return CurrencyDisplay{Symbol: c.Symbol, IsoLikeLabel: c.CurrencyCode}
}

// CurrencyFormatter renders amounts for presentation only.
type CurrencyFormatter struct {
	display CurrencyDisplay
}

// NewCurrencyFormatter builds a formatter from a user's settings.
func NewCurrencyFormatter(settings UserSettings) CurrencyFormatter {
	return CurrencyFormatter{display: ResolveSymbol(settings.Currency)}
}

func (f CurrencyFormatter) Display() CurrencyDisplay {
	return f.display
}

// Format renders amount as "Rs. 1,234.50".
func (f CurrencyFormatter) Format(amount decimal.Decimal) string {
	return f.display.Symbol + " " + FormatGrouped(amount, 2)
}

// groupedPrinter supplies English digit grouping ("1,234,567").
var groupedPrinter = message.NewPrinter(language.English)

// FormatGrouped rounds amount to precision places and inserts thousands
// separators. The fraction is taken from the decimal itself so no value
// passes through float64.
func FormatGrouped(amount decimal.Decimal, precision int32) string {
	fixed := amount.StringFixed(precision)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intDigits, frac, hasFrac := strings.Cut(fixed, ".")

	whole, ok := new(big.Int).SetString(intDigits, 10)
	if !ok || !whole.IsInt64() {
		return sign + fixed
	}
	grouped := groupedPrinter.Sprintf("%d", whole.Int64())
	if hasFrac {
		grouped += "." + frac
	}
	return sign + grouped
}
