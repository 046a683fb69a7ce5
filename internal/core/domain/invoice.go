package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a sales document issued by an entity to a buyer. It owns its
// line items exclusively.
type Invoice struct {
	InvoiceID       string       `json:"invoiceID"`
	EntityID        string       `json:"entityID"`
	InvoiceNumber   string       `json:"invoiceNumber"`
	InvoiceDate     time.Time    `json:"invoiceDate"`
	DocumentType    DocumentType `json:"documentType"`
	Salesman        string       `json:"salesman"`
	ReferenceNumber string       `json:"referenceNumber"`
	BuyerID         string       `json:"buyerID"`
	Items           []LineItem   `json:"items"`
	AuditFields
}

// NewInvoice returns a draft sale invoice holding one blank line.
func NewInvoice(firstItemID string) Invoice {
	return Invoice{
		DocumentType: DocumentSaleInvoice,
		Items:        []LineItem{NewLineItem(firstItemID)},
	}
}

// TotalInvoiceValue is always derived from the items.
func (inv Invoice) TotalInvoiceValue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.TotalItemValue)
	}
	return total
}

// Totals aggregates the invoice's items.
func (inv Invoice) Totals() InvoiceTotals {
	return Aggregate(inv.Items)
}

func (inv Invoice) withItems(items []LineItem) Invoice {
	out := inv
	out.Items = items
	return out
}

// AddItem appends item.
func (inv Invoice) AddItem(item LineItem) Invoice {
	items := make([]LineItem, 0, len(inv.Items)+1)
	items = append(items, inv.Items...)
	items = append(items, item)
	return inv.withItems(items)
}

// RemoveItem drops the item with itemID. An invoice keeps at least one
// item, so removing the last one is a no-op, as is an unknown id.
func (inv Invoice) RemoveItem(itemID string) Invoice {
	if len(inv.Items) <= 1 {
		return inv
	}
	items := make([]LineItem, 0, len(inv.Items))
	for _, item := range inv.Items {
		if item.ItemID != itemID {
			items = append(items, item)
		}
	}
	if len(items) == len(inv.Items) {
		return inv
	}
	return inv.withItems(items)
}

// UpdateItem applies edit to the item with itemID.
func (inv Invoice) UpdateItem(itemID string, edit ItemEdit) Invoice {
	items := make([]LineItem, len(inv.Items))
	for i, item := range inv.Items {
		if item.ItemID == itemID {
			item = ApplyItemEdit(item, edit)
		}
		items[i] = item
	}
	return inv.withItems(items)
}

// Normalized recomputes every item without letting percentage rates
// overwrite manually entered sales tax.
func (inv Invoice) Normalized() Invoice {
	items := make([]LineItem, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = Recompute(item, NewFieldSet(), false)
	}
	return inv.withItems(items)
}
