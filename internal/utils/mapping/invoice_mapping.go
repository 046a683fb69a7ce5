package mapping

import (
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/models"
)

// ToModelInvoice converts a domain Invoice header to a model Invoice.
// Items are mapped separately with ToModelInvoiceItems.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:         d.InvoiceID,
		EntityID:          d.EntityID,
		BuyerID:           d.BuyerID,
		InvoiceNumber:     d.InvoiceNumber,
		InvoiceDate:       d.InvoiceDate,
		DocumentType:      string(d.DocumentType),
		Salesman:          d.Salesman,
		ReferenceNumber:   d.ReferenceNumber,
		TotalInvoiceValue: d.TotalInvoiceValue(),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice and its items to a domain Invoice.
func ToDomainInvoice(m models.Invoice, items []models.InvoiceItem) domain.Invoice {
	return domain.Invoice{
		InvoiceID:       m.InvoiceID,
		EntityID:        m.EntityID,
		BuyerID:         m.BuyerID,
		InvoiceNumber:   m.InvoiceNumber,
		InvoiceDate:     m.InvoiceDate,
		DocumentType:    domain.DocumentType(m.DocumentType),
		Salesman:        m.Salesman,
		ReferenceNumber: m.ReferenceNumber,
		Items:           ToDomainLineItems(items),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceItems converts the items of d, keeping their order in Position.
// Placeholder selections are stored as empty strings.
func ToModelInvoiceItems(d domain.Invoice) []models.InvoiceItem {
	items := make([]models.InvoiceItem, len(d.Items))
	for i, li := range d.Items {
		items[i] = models.InvoiceItem{
			ItemID:            li.ItemID,
			InvoiceID:         d.InvoiceID,
			Position:          i,
			HSCode:            li.HSCode,
			Description:       li.Description,
			SaleType:          domain.StripPlaceholder(string(li.SaleType)),
			UOM:               domain.StripPlaceholder(li.UOM),
			Quantity:          li.Quantity,
			UnitPrice:         li.UnitPrice,
			Rate:              domain.StripPlaceholder(li.Rate),
			SalesValue:        li.SalesValue,
			SalesTax:          li.SalesTax,
			Discount:          li.Discount,
			OtherDiscount:     li.OtherDiscount,
			TradeDiscount:     li.TradeDiscount,
			SalesTaxWithheld:  li.SalesTaxWithheld,
			ExtraTax:          li.ExtraTax,
			FurtherTax:        li.FurtherTax,
			FederalExciseDuty: li.FederalExciseDuty,
			T236G:             li.T236G,
			T236H:             li.T236H,
			FixedValue:        li.FixedValue,
			SROScheduleNo:     domain.StripPlaceholder(li.SROScheduleNo),
			SROItemSerialNo:   domain.StripPlaceholder(li.SROItemSerialNo),
			TotalItemValue:    li.TotalItemValue,
		}
	}
	return items
}

// ToDomainLineItem converts a stored item back to a domain LineItem.
func ToDomainLineItem(m models.InvoiceItem) domain.LineItem {
	return domain.LineItem{
		ItemID:            m.ItemID,
		HSCode:            m.HSCode,
		Description:       m.Description,
		SaleType:          domain.SaleType(m.SaleType),
		UOM:               m.UOM,
		Quantity:          m.Quantity,
		UnitPrice:         m.UnitPrice,
		Rate:              m.Rate,
		SalesValue:        m.SalesValue,
		SalesTax:          m.SalesTax,
		Discount:          m.Discount,
		OtherDiscount:     m.OtherDiscount,
		TradeDiscount:     m.TradeDiscount,
		SalesTaxWithheld:  m.SalesTaxWithheld,
		ExtraTax:          m.ExtraTax,
		FurtherTax:        m.FurtherTax,
		FederalExciseDuty: m.FederalExciseDuty,
		T236G:             m.T236G,
		T236H:             m.T236H,
		FixedValue:        m.FixedValue,
		SROScheduleNo:     m.SROScheduleNo,
		SROItemSerialNo:   m.SROItemSerialNo,
		TotalItemValue:    m.TotalItemValue,
	}
}

// ToDomainLineItems converts a slice of stored items.
func ToDomainLineItems(ms []models.InvoiceItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
