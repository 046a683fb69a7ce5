package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

const reportKeyTimeLayout = "20060102T150405Z"

type reportService struct {
	BaseService
	invoiceSvc  portssvc.InvoiceReaderSvc
	settingsSvc portssvc.SettingsReaderSvc
	buyerRepo   portsrepo.BuyerReader
	entityRepo  portsrepo.EntityReader
	exporter    portssvc.ReportExporter
	store       portsrepo.ReportStore
}

// ReportServiceOption is a functional option for configuring the report service.
type ReportServiceOption func(*reportService)

// WithReportExporter sets the file format reports are exported in.
func WithReportExporter(exporter portssvc.ReportExporter) ReportServiceOption {
	return func(s *reportService) {
		s.exporter = exporter
	}
}

// WithReportStore sets where exported reports are archived.
func WithReportStore(store portsrepo.ReportStore) ReportServiceOption {
	return func(s *reportService) {
		s.store = store
	}
}

// NewReportService creates a report service. Export needs both an exporter
// and a store; building reports needs neither.
func NewReportService(invoiceSvc portssvc.InvoiceReaderSvc, settingsSvc portssvc.SettingsReaderSvc, buyerRepo portsrepo.BuyerReader, entityRepo portsrepo.EntityReader, options ...ReportServiceOption) portssvc.ReportSvcFacade {
	s := &reportService{
		BaseService: newBaseService(),
		invoiceSvc:  invoiceSvc,
		settingsSvc: settingsSvc,
		buyerRepo:   buyerRepo,
		entityRepo:  entityRepo,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// BuildInvoiceReport lays out an invoice with the user's visibility settings
// for configKey and the user's display currency.
func (s *reportService) BuildInvoiceReport(ctx context.Context, userID, invoiceID, configKey string) (*domain.InvoiceReport, error) {
	if configKey == "" {
		configKey = domain.ConfigInvoiceReport
	}
	if _, ok := domain.DefaultFieldConfig()[configKey]; !ok {
		return nil, fmt.Errorf("%w: unknown config key %q", apperrors.ErrValidation, configKey)
	}

	inv, err := s.invoiceSvc.GetInvoiceByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsSvc.LoadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	entity, err := s.entityRepo.FindEntityByID(ctx, inv.EntityID)
	if err != nil {
		return nil, s.partyLookupError(ctx, "entity", inv.EntityID, err)
	}
	buyer, err := s.buyerRepo.FindBuyerByID(ctx, inv.BuyerID)
	if err != nil {
		return nil, s.partyLookupError(ctx, "buyer", inv.BuyerID, err)
	}

	report := domain.BuildInvoiceReport(*inv, *entity, *buyer, settings.Registry(), configKey, domain.NewCurrencyFormatter(settings))
	return &report, nil
}

// ExportInvoiceReport renders the report and archives the file.
func (s *reportService) ExportInvoiceReport(ctx context.Context, userID, invoiceID string) (*dto.ExportReportResponse, error) {
	if s.exporter == nil || s.store == nil {
		return nil, apperrors.NewAppError(503, "report export is not configured", nil)
	}

	report, err := s.BuildInvoiceReport(ctx, userID, invoiceID, domain.ConfigInvoiceReport)
	if err != nil {
		return nil, err
	}

	data, contentType, err := s.exporter.Export(*report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to render report for invoice %s: %w", invoiceID, err)
	}

	key := fmt.Sprintf("reports/%s/%s-%s.%s", userID, invoiceID, s.Now().Format(reportKeyTimeLayout), s.exporter.Extension())
	location, err := s.store.SaveReport(ctx, key, contentType, data)
	if err != nil {
		s.LogError(ctx, err, "Failed to store report", slog.String("key", key))
		return nil, fmt.Errorf("failed to store report for invoice %s: %w", invoiceID, err)
	}

	s.LogInfo(ctx, "Report exported", slog.String("invoice_id", invoiceID), slog.String("location", location), slog.Int("bytes", len(data)))
	return &dto.ExportReportResponse{
		InvoiceID:   invoiceID,
		Key:         key,
		Location:    location,
		ContentType: contentType,
		Size:        len(data),
	}, nil
}

func (s *reportService) partyLookupError(ctx context.Context, kind, id string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%s %s referenced by the invoice: %w", kind, id, err)
	}
	s.LogError(ctx, err, "Failed to load invoice party", slog.String("kind", kind), slog.String("id", id))
	return fmt.Errorf("failed to load %s %s: %w", kind, id, err)
}
