package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
)

// DateLayout is the wire format of invoice dates.
const DateLayout = "2006-01-02"

// LineItemRequest is a line item as edited in the invoice form. Select
// fields may still hold their "Select ..." prompt.
type LineItemRequest struct {
	ItemID            string `json:"itemID"`
	HSCode            string `json:"hsCode"`
	Description       string `json:"description"`
	SaleType          string `json:"saleType"`
	UOM               string `json:"uom"`
	Quantity          Amount `json:"quantity"`
	UnitPrice         Amount `json:"unitPrice"`
	Rate              string `json:"rate"`
	SalesValue        Amount `json:"salesValue"`
	SalesTax          Amount `json:"salesTax"`
	Discount          Amount `json:"discount"`
	OtherDiscount     Amount `json:"otherDiscount"`
	TradeDiscount     Amount `json:"tradeDiscount"`
	SalesTaxWithheld  Amount `json:"salesTaxWithheld"`
	ExtraTax          Amount `json:"extraTax"`
	FurtherTax        Amount `json:"furtherTax"`
	FederalExciseDuty Amount `json:"federalExciseDuty"`
	T236G             Amount `json:"t236g"`
	T236H             Amount `json:"t236h"`
	FixedValue        Amount `json:"fixedValue"`
	SROScheduleNo     string `json:"sroScheduleNo"`
	SROItemSerialNo   string `json:"sroItemSerialNo"`
	TotalItemValue    Amount `json:"totalItemValue"`
}

// CreateInvoiceRequest defines the data needed to create or preview an invoice.
// Business rules are checked by the invoice validator so that every problem
// is reported at once; binding only rejects malformed payloads.
type CreateInvoiceRequest struct {
	EntityID        string            `json:"entityID" binding:"required"`
	InvoiceNumber   string            `json:"invoiceNumber"`
	Date            string            `json:"date"`
	DocumentType    string            `json:"documentType" binding:"omitempty,doctype"`
	Salesman        string            `json:"salesman"`
	ReferenceNumber string            `json:"referenceNumber"`
	BuyerID         string            `json:"buyerID"`
	Items           []LineItemRequest `json:"items" binding:"dive"`
}

// RecomputeItemRequest carries one item plus either a single field edit or an
// explicit changed-field set.
type RecomputeItemRequest struct {
	Item           LineItemRequest `json:"item"`
	Field          string          `json:"field"`
	Value          string          `json:"value"`
	ChangedFields  []string        `json:"changedFields"`
	AllowTaxRecalc bool            `json:"allowTaxRecalc"`
}

// ListInvoicesParams defines the query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	ItemID            string `json:"itemID"`
	HSCode            string `json:"hsCode"`
	Description       string `json:"description"`
	SaleType          string `json:"saleType"`
	UOM               string `json:"uom"`
	Quantity          Amount `json:"quantity"`
	UnitPrice         Amount `json:"unitPrice"`
	Rate              string `json:"rate"`
	RateKind          string `json:"rateKind"`
	RateValue         Amount `json:"rateValue"`
	SalesValue        Amount `json:"salesValue"`
	SalesTax          Amount `json:"salesTax"`
	Discount          Amount `json:"discount"`
	OtherDiscount     Amount `json:"otherDiscount"`
	TradeDiscount     Amount `json:"tradeDiscount"`
	SalesTaxWithheld  Amount `json:"salesTaxWithheld"`
	ExtraTax          Amount `json:"extraTax"`
	FurtherTax        Amount `json:"furtherTax"`
	FederalExciseDuty Amount `json:"federalExciseDuty"`
	T236G             Amount `json:"t236g"`
	T236H             Amount `json:"t236h"`
	FixedValue        Amount `json:"fixedValue"`
	SROScheduleNo     string `json:"sroScheduleNo"`
	SROItemSerialNo   string `json:"sroItemSerialNo"`
	TotalItemValue    Amount `json:"totalItemValue"`
}

// TotalsResponse defines the invoice-level totals.
type TotalsResponse struct {
	Subtotal           Amount `json:"subtotal"`
	TotalSalesTax      Amount `json:"totalSalesTax"`
	TotalExtraTax      Amount `json:"totalExtraTax"`
	TotalFurtherTax    Amount `json:"totalFurtherTax"`
	TotalFED           Amount `json:"totalFED"`
	TotalTaxWithheld   Amount `json:"totalTaxWithheld"`
	Total236G          Amount `json:"total236g"`
	Total236H          Amount `json:"total236h"`
	TotalDiscount      Amount `json:"totalDiscount"`
	TotalOtherDiscount Amount `json:"totalOtherDiscount"`
	TotalTradeDiscount Amount `json:"totalTradeDiscount"`
	GrandTotal         Amount `json:"grandTotal"`
}

// ValidationIssue is one failed invoice rule.
type ValidationIssue struct {
	Field     string `json:"field"`
	ItemIndex int    `json:"itemIndex"`
	Message   string `json:"message"`
}

// InvoiceResponse defines the data returned for a persisted invoice.
type InvoiceResponse struct {
	InvoiceID         string             `json:"invoiceID"`
	EntityID          string             `json:"entityID"`
	InvoiceNumber     string             `json:"invoiceNumber"`
	Date              string             `json:"date"`
	DocumentType      string             `json:"documentType"`
	Salesman          string             `json:"salesman"`
	ReferenceNumber   string             `json:"referenceNumber"`
	BuyerID           string             `json:"buyerID"`
	Items             []LineItemResponse `json:"items"`
	Totals            TotalsResponse     `json:"totals"`
	TotalInvoiceValue Amount             `json:"totalInvoiceValue"`
	CreatedAt         time.Time          `json:"createdAt"`
	CreatedBy         string             `json:"createdBy"`
}

// InvoicePreviewResponse is an unsaved invoice after recomputation.
type InvoicePreviewResponse struct {
	Items             []LineItemResponse `json:"items"`
	Totals            TotalsResponse     `json:"totals"`
	TotalInvoiceValue Amount             `json:"totalInvoiceValue"`
	Submittable       bool               `json:"submittable"`
	Issues            []ValidationIssue  `json:"issues"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ParseDate accepts "2006-01-02" or RFC 3339; anything else yields the zero time.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Truncate(24 * time.Hour)
	}
	return time.Time{}
}

// ToDomainLineItem converts a request item into a domain item without recomputing it.
func (r LineItemRequest) ToDomainLineItem() domain.LineItem {
	item := domain.NewLineItem(r.ItemID)
	if r.SaleType != "" {
		item.SaleType = domain.SaleType(strings.TrimSpace(r.SaleType))
	}
	if r.UOM != "" {
		item.UOM = strings.TrimSpace(r.UOM)
	}
	if r.Rate != "" {
		item.Rate = strings.TrimSpace(r.Rate)
	}
	if r.SROScheduleNo != "" {
		item.SROScheduleNo = strings.TrimSpace(r.SROScheduleNo)
	}
	if r.SROItemSerialNo != "" {
		item.SROItemSerialNo = strings.TrimSpace(r.SROItemSerialNo)
	}
	item.HSCode = strings.TrimSpace(r.HSCode)
	item.Description = strings.TrimSpace(r.Description)
	item.Quantity = r.Quantity.Decimal
	item.UnitPrice = r.UnitPrice.Decimal
	item.SalesValue = r.SalesValue.Decimal
	item.SalesTax = r.SalesTax.Decimal
	item.Discount = r.Discount.Decimal
	item.OtherDiscount = r.OtherDiscount.Decimal
	item.TradeDiscount = r.TradeDiscount.Decimal
	item.SalesTaxWithheld = r.SalesTaxWithheld.Decimal
	item.ExtraTax = r.ExtraTax.Decimal
	item.FurtherTax = r.FurtherTax.Decimal
	item.FederalExciseDuty = r.FederalExciseDuty.Decimal
	item.T236G = r.T236G.Decimal
	item.T236H = r.T236H.Decimal
	item.FixedValue = r.FixedValue.Decimal
	item.TotalItemValue = r.TotalItemValue.Decimal
	return item
}

// ToDomainInvoice converts the request into a domain invoice. Items are not
// recomputed here.
func (r CreateInvoiceRequest) ToDomainInvoice() domain.Invoice {
	items := make([]domain.LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = item.ToDomainLineItem()
	}
	docType := domain.DocumentType(strings.TrimSpace(r.DocumentType))
	if docType == "" {
		docType = domain.DocumentSaleInvoice
	}
	return domain.Invoice{
		EntityID:        strings.TrimSpace(r.EntityID),
		InvoiceNumber:   strings.TrimSpace(r.InvoiceNumber),
		InvoiceDate:     ParseDate(r.Date),
		DocumentType:    docType,
		Salesman:        strings.TrimSpace(r.Salesman),
		ReferenceNumber: strings.TrimSpace(r.ReferenceNumber),
		BuyerID:         strings.TrimSpace(r.BuyerID),
		Items:           items,
	}
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO.
// Select fields still at their prompt option go out as "".
func ToLineItemResponse(item domain.LineItem) LineItemResponse {
	rate := item.ParsedRate()
	return LineItemResponse{
		ItemID:            item.ItemID,
		HSCode:            item.HSCode,
		Description:       item.Description,
		SaleType:          domain.StripPlaceholder(string(item.SaleType)),
		UOM:               domain.StripPlaceholder(item.UOM),
		Quantity:          NewAmount(item.Quantity),
		UnitPrice:         NewAmount(item.UnitPrice),
		Rate:              domain.StripPlaceholder(item.Rate),
		RateKind:          rate.Kind().String(),
		RateValue:         NewAmount(rate.Value()),
		SalesValue:        NewAmount(item.SalesValue),
		SalesTax:          NewAmount(item.SalesTax),
		Discount:          NewAmount(item.Discount),
		OtherDiscount:     NewAmount(item.OtherDiscount),
		TradeDiscount:     NewAmount(item.TradeDiscount),
		SalesTaxWithheld:  NewAmount(item.SalesTaxWithheld),
		ExtraTax:          NewAmount(item.ExtraTax),
		FurtherTax:        NewAmount(item.FurtherTax),
		FederalExciseDuty: NewAmount(item.FederalExciseDuty),
		T236G:             NewAmount(item.T236G),
		T236H:             NewAmount(item.T236H),
		FixedValue:        NewAmount(item.FixedValue),
		SROScheduleNo:     domain.StripPlaceholder(item.SROScheduleNo),
		SROItemSerialNo:   domain.StripPlaceholder(item.SROItemSerialNo),
		TotalItemValue:    NewAmount(item.TotalItemValue),
	}
}

// ToLineItemResponses converts a slice of domain.LineItem to []LineItemResponse.
func ToLineItemResponses(items []domain.LineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i, item := range items {
		res[i] = ToLineItemResponse(item)
	}
	return res
}

// ToTotalsResponse converts domain.InvoiceTotals to TotalsResponse DTO.
func ToTotalsResponse(t domain.InvoiceTotals) TotalsResponse {
	return TotalsResponse{
		Subtotal:           NewAmount(t.Subtotal),
		TotalSalesTax:      NewAmount(t.TotalSalesTax),
		TotalExtraTax:      NewAmount(t.TotalExtraTax),
		TotalFurtherTax:    NewAmount(t.TotalFurtherTax),
		TotalFED:           NewAmount(t.TotalFED),
		TotalTaxWithheld:   NewAmount(t.TotalTaxWithheld),
		Total236G:          NewAmount(t.Total236G),
		Total236H:          NewAmount(t.Total236H),
		TotalDiscount:      NewAmount(t.TotalDiscount),
		TotalOtherDiscount: NewAmount(t.TotalOtherDiscount),
		TotalTradeDiscount: NewAmount(t.TotalTradeDiscount),
		GrandTotal:         NewAmount(t.GrandTotal),
	}
}

// ToValidationIssues converts validator diagnostics to their wire form.
func ToValidationIssues(errs domain.ValidationErrors) []ValidationIssue {
	issues := make([]ValidationIssue, len(errs))
	for i, e := range errs {
		issues[i] = ValidationIssue{Field: e.Field, ItemIndex: e.ItemIndex, Message: e.Err.Error()}
	}
	return issues
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	date := ""
	if !inv.InvoiceDate.IsZero() {
		date = inv.InvoiceDate.Format(DateLayout)
	}
	return InvoiceResponse{
		InvoiceID:         inv.InvoiceID,
		EntityID:          inv.EntityID,
		InvoiceNumber:     inv.InvoiceNumber,
		Date:              date,
		DocumentType:      string(inv.DocumentType),
		Salesman:          inv.Salesman,
		ReferenceNumber:   inv.ReferenceNumber,
		BuyerID:           inv.BuyerID,
		Items:             ToLineItemResponses(inv.Items),
		Totals:            ToTotalsResponse(inv.Totals()),
		TotalInvoiceValue: NewAmount(inv.TotalInvoiceValue()),
		CreatedAt:         inv.CreatedAt,
		CreatedBy:         inv.CreatedBy,
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// ToInvoicePreviewResponse reports inv as given along with its validation issues.
func ToInvoicePreviewResponse(inv domain.Invoice) InvoicePreviewResponse {
	errs := domain.ValidateInvoice(inv)
	return InvoicePreviewResponse{
		Items:             ToLineItemResponses(inv.Items),
		Totals:            ToTotalsResponse(inv.Totals()),
		TotalInvoiceValue: NewAmount(inv.TotalInvoiceValue()),
		Submittable:       len(errs) == 0,
		Issues:            ToValidationIssues(errs),
	}
}
