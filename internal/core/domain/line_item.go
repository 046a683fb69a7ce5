package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FieldName identifies an editable field of a line item.
type FieldName string

const (
	FieldHSCode            FieldName = "hsCode"
	FieldDescription       FieldName = "description"
	FieldSaleType          FieldName = "saleType"
	FieldUOM               FieldName = "uom"
	FieldQuantity          FieldName = "quantity"
	FieldUnitPrice         FieldName = "unitPrice"
	FieldRate              FieldName = "rate"
	FieldSalesValue        FieldName = "salesValue"
	FieldSalesTax          FieldName = "salesTax"
	FieldDiscount          FieldName = "discount"
	FieldOtherDiscount     FieldName = "otherDiscount"
	FieldTradeDiscount     FieldName = "tradeDiscount"
	FieldSalesTaxWithheld  FieldName = "salesTaxWithheld"
	FieldExtraTax          FieldName = "extraTax"
	FieldFurtherTax        FieldName = "furtherTax"
	FieldFederalExciseDuty FieldName = "federalExciseDuty"
	FieldT236G             FieldName = "t236g"
	FieldT236H             FieldName = "t236h"
	FieldFixedValue        FieldName = "fixedValue"
	FieldSROScheduleNo     FieldName = "sroScheduleNo"
	FieldSROItemSerialNo   FieldName = "sroItemSerialNo"
	FieldTotalItemValue    FieldName = "totalItemValue"
)

var knownFields = NewFieldSet(
	FieldHSCode, FieldDescription, FieldSaleType, FieldUOM, FieldQuantity, FieldUnitPrice,
	FieldRate, FieldSalesValue, FieldSalesTax, FieldDiscount, FieldOtherDiscount,
	FieldTradeDiscount, FieldSalesTaxWithheld, FieldExtraTax, FieldFurtherTax,
	FieldFederalExciseDuty, FieldT236G, FieldT236H, FieldFixedValue, FieldSROScheduleNo,
	FieldSROItemSerialNo, FieldTotalItemValue,
)

// ParseFieldName reports whether s names a line item field.
func ParseFieldName(s string) (FieldName, bool) {
	f := FieldName(s)
	return f, knownFields.Has(f)
}

// AdjustmentFields are clamped to >= 0 and rounded on every recompute.
var AdjustmentFields = []FieldName{
	FieldDiscount,
	FieldOtherDiscount,
	FieldTradeDiscount,
	FieldSalesTaxWithheld,
	FieldExtraTax,
	FieldFurtherTax,
	FieldFederalExciseDuty,
	FieldT236G,
	FieldT236H,
}

// taxTriggers are the edits after which a percentage rate re-derives sales tax.
var taxTriggers = NewFieldSet(FieldRate, FieldQuantity, FieldUnitPrice, FieldSalesValue)

// FieldSet is a set of field names.
type FieldSet map[FieldName]struct{}

func NewFieldSet(fields ...FieldName) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

func (s FieldSet) Has(f FieldName) bool {
	_, ok := s[f]
	return ok
}

// LineItem is one taxable transaction line of an invoice.
type LineItem struct {
	ItemID            string          `json:"itemID"`
	HSCode            string          `json:"hsCode"`
	Description       string          `json:"description"`
	SaleType          SaleType        `json:"saleType"`
	UOM               string          `json:"uom"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Rate              string          `json:"rate"` // as selected or typed; see ParseRate
	SalesValue        decimal.Decimal `json:"salesValue"`
	SalesTax          decimal.Decimal `json:"salesTax"`
	Discount          decimal.Decimal `json:"discount"`
	OtherDiscount     decimal.Decimal `json:"otherDiscount"`
	TradeDiscount     decimal.Decimal `json:"tradeDiscount"`
	SalesTaxWithheld  decimal.Decimal `json:"salesTaxWithheld"`
	ExtraTax          decimal.Decimal `json:"extraTax"`
	FurtherTax        decimal.Decimal `json:"furtherTax"`
	FederalExciseDuty decimal.Decimal `json:"federalExciseDuty"`
	T236G             decimal.Decimal `json:"t236g"`
	T236H             decimal.Decimal `json:"t236h"`
	FixedValue        decimal.Decimal `json:"fixedValue"`
	SROScheduleNo     string          `json:"sroScheduleNo"`
	SROItemSerialNo   string          `json:"sroItemSerialNo"`
	TotalItemValue    decimal.Decimal `json:"totalItemValue"`
}

// NewLineItem returns a blank line as added by the user.
func NewLineItem(itemID string) LineItem {
	return LineItem{
		ItemID:          itemID,
		SaleType:        PlaceholderSaleType,
		UOM:             PlaceholderUOM,
		Rate:            PlaceholderRate,
		SROScheduleNo:   PlaceholderSROSchedule,
		SROItemSerialNo: PlaceholderSROItemSerial,
	}
}

// ParsedRate parses the item's rate field.
func (li LineItem) ParsedRate() RateValue {
	return ParseRate(li.Rate)
}

// ComputeTotal evaluates the total item value formula on the current fields.
func (li LineItem) ComputeTotal() decimal.Decimal {
	return li.SalesValue.
		Add(li.SalesTax).
		Add(li.ExtraTax).
		Add(li.FurtherTax).
		Add(li.FederalExciseDuty).
		Add(li.T236G).
		Add(li.T236H).
		Sub(li.Discount).
		Sub(li.OtherDiscount).
		Sub(li.SalesTaxWithheld).
		Sub(li.TradeDiscount)
}

// amountField returns a pointer to the numeric field f, or nil when f is
// not numeric.
func (li *LineItem) amountField(f FieldName) *decimal.Decimal {
	switch f {
	case FieldQuantity:
		return &li.Quantity
	case FieldUnitPrice:
		return &li.UnitPrice
	case FieldSalesValue:
		return &li.SalesValue
	case FieldSalesTax:
		return &li.SalesTax
	case FieldDiscount:
		return &li.Discount
	case FieldOtherDiscount:
		return &li.OtherDiscount
	case FieldTradeDiscount:
		return &li.TradeDiscount
	case FieldSalesTaxWithheld:
		return &li.SalesTaxWithheld
	case FieldExtraTax:
		return &li.ExtraTax
	case FieldFurtherTax:
		return &li.FurtherTax
	case FieldFederalExciseDuty:
		return &li.FederalExciseDuty
	case FieldT236G:
		return &li.T236G
	case FieldT236H:
		return &li.T236H
	case FieldFixedValue:
		return &li.FixedValue
	}
	return nil
}

// Recompute derives salesValue/unitPrice, salesTax and totalItemValue from
// the item's fields. changed names the field(s) the user just edited;
// unitPrice wins over salesValue when both are present. allowTaxRecalc lets a
// percentage rate overwrite salesTax.
func Recompute(item LineItem, changed FieldSet, allowTaxRecalc bool) LineItem {
	out := item
	out.Quantity = toScale(out.Quantity)
	out.UnitPrice = toScale(out.UnitPrice)
	out.SalesValue = toScale(out.SalesValue)

	if out.Quantity.IsPositive() {
		switch {
		case changed.Has(FieldUnitPrice):
			out.SalesValue = toScale(out.Quantity.Mul(out.UnitPrice))
		case changed.Has(FieldSalesValue):
			out.UnitPrice = toScale(out.SalesValue.Div(out.Quantity))
		}
	}

	rate := out.ParsedRate()
	switch rate.Kind() {
	case RatePercentage:
		if allowTaxRecalc {
			out.SalesTax = out.SalesValue.Mul(rate.Value()).Div(hundred)
		}
	case RateFixedAmount:
		// The flat amount is the item's whole sales tax, not a per-unit charge.
		// TODO: check flat per-unit rates ("Rs.60/kg") against FBR rules before multiplying by quantity.
		out.SalesTax = rate.Value()
	}
	out.SalesTax = toScale(out.SalesTax)

	for _, f := range AdjustmentFields {
		p := out.amountField(f)
		*p = toScale(*p)
	}
	out.FixedValue = out.FixedValue.Round(AmountScale)

	out.TotalItemValue = out.ComputeTotal()
	return out
}

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale int32 = 4

// toScale clamps d at zero and rounds it to AmountScale places, so the
// stored parts of an item always add up to its stored total.
func toScale(d decimal.Decimal) decimal.Decimal {
	return nonNegative(d).Round(AmountScale)
}

// ItemEdit is a single field change coming from the invoice form.
type ItemEdit struct {
	Field FieldName
	Value string
}

// ApplyItemEdit writes edit into item and recomputes the derived fields.
// Editing quantity re-derives salesValue from the current unit price.
// totalItemValue is never directly editable.
func ApplyItemEdit(item LineItem, edit ItemEdit) LineItem {
	out := item
	changed := NewFieldSet(edit.Field)

	switch edit.Field {
	case FieldHSCode:
		out.HSCode = edit.Value
	case FieldDescription:
		out.Description = edit.Value
	case FieldSaleType:
		out.SaleType = SaleType(strings.TrimSpace(edit.Value))
	case FieldUOM:
		out.UOM = strings.TrimSpace(edit.Value)
	case FieldRate:
		out.Rate = strings.TrimSpace(edit.Value)
	case FieldSROScheduleNo:
		out.SROScheduleNo = strings.TrimSpace(edit.Value)
	case FieldSROItemSerialNo:
		out.SROItemSerialNo = strings.TrimSpace(edit.Value)
	case FieldTotalItemValue:
		changed = NewFieldSet()
	default:
		if p := out.amountField(edit.Field); p != nil {
			*p = CoerceAmount(edit.Value)
		}
	}

	if edit.Field == FieldQuantity {
		changed = NewFieldSet(FieldQuantity, FieldUnitPrice)
	}

	return Recompute(out, changed, taxTriggers.Has(edit.Field))
}
