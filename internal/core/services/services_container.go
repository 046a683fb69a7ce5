package services

import (
	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, exporter portssvc.ReportExporter) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Buyer = NewBuyerService(repos.BuyerRepo)
	container.Entity = NewEntityService(repos.EntityRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.BuyerRepo, repos.EntityRepo)
	container.Catalog = NewCatalogService()

	// Reports read invoices through the invoice service so ownership checks apply.
	container.Report = NewReportService(
		container.Invoice,
		container.Settings,
		repos.BuyerRepo,
		repos.EntityRepo,
		WithReportExporter(exporter),
		WithReportStore(repos.ReportStore),
	)

	return container
}
