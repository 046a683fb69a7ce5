package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table. Items are stored separately.
type Invoice struct {
	InvoiceID       string    `db:"invoice_id"`
	EntityID        string    `db:"entity_id"`
	BuyerID         string    `db:"buyer_id"`
	InvoiceNumber   string    `db:"invoice_number"`
	InvoiceDate     time.Time `db:"invoice_date"`
	DocumentType    string    `db:"document_type"`
	Salesman        string    `db:"salesman"`
	ReferenceNumber string    `db:"reference_number"`
	// Denormalized from the items for listing; the domain always re-derives it.
	TotalInvoiceValue decimal.Decimal `db:"total_invoice_value"`
	AuditFields
}

// InvoiceItem is a row of the invoice_items table.
type InvoiceItem struct {
	ItemID            string          `db:"item_id"`
	InvoiceID         string          `db:"invoice_id"`
	Position          int             `db:"position"`
	HSCode            string          `db:"hs_code"`
	Description       string          `db:"description"`
	SaleType          string          `db:"sale_type"`
	UOM               string          `db:"uom"`
	Quantity          decimal.Decimal `db:"quantity"`
	UnitPrice         decimal.Decimal `db:"unit_price"`
	Rate              string          `db:"rate"`
	SalesValue        decimal.Decimal `db:"sales_value"`
	SalesTax          decimal.Decimal `db:"sales_tax"`
	Discount          decimal.Decimal `db:"discount"`
	OtherDiscount     decimal.Decimal `db:"other_discount"`
	TradeDiscount     decimal.Decimal `db:"trade_discount"`
	SalesTaxWithheld  decimal.Decimal `db:"sales_tax_withheld"`
	ExtraTax          decimal.Decimal `db:"extra_tax"`
	FurtherTax        decimal.Decimal `db:"further_tax"`
	FederalExciseDuty decimal.Decimal `db:"federal_excise_duty"`
	T236G             decimal.Decimal `db:"t236g"`
	T236H             decimal.Decimal `db:"t236h"`
	FixedValue        decimal.Decimal `db:"fixed_value"`
	SROScheduleNo     string          `db:"sro_schedule_no"`
	SROItemSerialNo   string          `db:"sro_item_serial_no"`
	TotalItemValue    decimal.Decimal `db:"total_item_value"`
}
