package repositories

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice together with its line items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByUser retrieves a page of invoice headers created by userID,
	// newest invoice date first. It returns the invoices, a token for the next page, and an error.
	ListInvoicesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// FindItemsByInvoiceIDs retrieves line items for several invoices, grouped by invoice ID.
	FindItemsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]domain.LineItem, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists an invoice and all of its items in a single DB transaction.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice and its items.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
