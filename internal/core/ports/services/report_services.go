package services

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

// ReportExporter renders a report into a downloadable file.
type ReportExporter interface {
	// Export returns the file contents and their content type.
	Export(report domain.InvoiceReport) ([]byte, string, error)

	// Extension is the file extension of exported reports, without the dot.
	Extension() string
}

// ReportSvcFacade builds and exports invoice reports.
type ReportSvcFacade interface {
	// BuildInvoiceReport lays an invoice out using the user's visibility and currency settings.
	BuildInvoiceReport(ctx context.Context, userID, invoiceID, configKey string) (*domain.InvoiceReport, error)

	// ExportInvoiceReport renders the report and archives it in the report store.
	ExportInvoiceReport(ctx context.Context, userID, invoiceID string) (*dto.ExportReportResponse, error)
}
