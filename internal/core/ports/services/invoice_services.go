package services

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice owned by requestingUserID.
	GetInvoiceByID(ctx context.Context, invoiceID string, requestingUserID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of the user's invoices.
	ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice recomputes, validates and persists a new invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice owned by requestingUserID.
	DeleteInvoice(ctx context.Context, invoiceID string, requestingUserID string) error
}

// InvoiceCalculatorSvc exposes the stateless calculation core.
type InvoiceCalculatorSvc interface {
	// PreviewInvoice recomputes an unsaved invoice and reports totals and validation issues.
	PreviewInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoicePreviewResponse, error)

	// RecomputeItem applies a single edit (or changed-field set) to one item.
	RecomputeItem(ctx context.Context, req dto.RecomputeItemRequest) (*dto.LineItemResponse, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceCalculatorSvc
}
