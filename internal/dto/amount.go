package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value on the wire. It is written as a plain JSON
// number and read from a number, a numeric string or null. Input the form
// could not parse becomes zero, matching how the calculator coerces edits.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	a.Decimal = domain.CoerceAmount(s)
	return nil
}
