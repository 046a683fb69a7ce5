package domain

import "github.com/shopspring/decimal"

// InvoiceTotals summarises the line items of an invoice.
type InvoiceTotals struct {
	Subtotal           decimal.Decimal `json:"subtotal"`
	TotalSalesTax      decimal.Decimal `json:"totalSalesTax"`
	TotalExtraTax      decimal.Decimal `json:"totalExtraTax"`
	TotalFurtherTax    decimal.Decimal `json:"totalFurtherTax"`
	TotalFED           decimal.Decimal `json:"totalFED"`
	TotalTaxWithheld   decimal.Decimal `json:"totalTaxWithheld"`
	Total236G          decimal.Decimal `json:"total236g"`
	Total236H          decimal.Decimal `json:"total236h"`
	TotalDiscount      decimal.Decimal `json:"totalDiscount"`
	TotalOtherDiscount decimal.Decimal `json:"totalOtherDiscount"`
	TotalTradeDiscount decimal.Decimal `json:"totalTradeDiscount"`
	GrandTotal         decimal.Decimal `json:"grandTotal"`
}

// Aggregate sums items into invoice totals. The result does not depend on
// item order and is all zeros for no items.
func Aggregate(items []LineItem) InvoiceTotals {
	var t InvoiceTotals
	for _, item := range items {
		t.Subtotal = t.Subtotal.Add(item.SalesValue)
		t.TotalSalesTax = t.TotalSalesTax.Add(item.SalesTax)
		t.TotalExtraTax = t.TotalExtraTax.Add(item.ExtraTax)
		t.TotalFurtherTax = t.TotalFurtherTax.Add(item.FurtherTax)
		t.TotalFED = t.TotalFED.Add(item.FederalExciseDuty)
		t.TotalTaxWithheld = t.TotalTaxWithheld.Add(item.SalesTaxWithheld)
		t.Total236G = t.Total236G.Add(item.T236G)
		t.Total236H = t.Total236H.Add(item.T236H)
		t.TotalDiscount = t.TotalDiscount.Add(item.Discount)
		t.TotalOtherDiscount = t.TotalOtherDiscount.Add(item.OtherDiscount)
		t.TotalTradeDiscount = t.TotalTradeDiscount.Add(item.TradeDiscount)
		t.GrandTotal = t.GrandTotal.Add(item.TotalItemValue)
	}
	return t
}

// ComponentTotal recomputes the grand total from the component sums; it
// equals GrandTotal whenever every item satisfies the total formula.
func (t InvoiceTotals) ComponentTotal() decimal.Decimal {
	return t.Subtotal.
		Add(t.TotalSalesTax).
		Add(t.TotalExtraTax).
		Add(t.TotalFurtherTax).
		Add(t.TotalFED).
		Add(t.Total236G).
		Add(t.Total236H).
		Sub(t.TotalDiscount).
		Sub(t.TotalOtherDiscount).
		Sub(t.TotalTaxWithheld).
		Sub(t.TotalTradeDiscount)
}
