package handlers_test

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string, requestingUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListInvoicesResponse), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, requestingUserID string) error {
	args := m.Called(ctx, invoiceID, requestingUserID)
	return args.Error(0)
}
func (m *MockInvoiceService) PreviewInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoicePreviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InvoicePreviewResponse), args.Error(1)
}
func (m *MockInvoiceService) RecomputeItem(ctx context.Context, req dto.RecomputeItemRequest) (*dto.LineItemResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LineItemResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock BuyerService ---
type MockBuyerService struct {
	mock.Mock
}

func (m *MockBuyerService) CreateBuyer(ctx context.Context, req dto.CreateBuyerRequest, creatorUserID string) (*domain.Buyer, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}
func (m *MockBuyerService) GetBuyerByID(ctx context.Context, buyerID string, requestingUserID string) (*domain.Buyer, error) {
	args := m.Called(ctx, buyerID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}
func (m *MockBuyerService) ListBuyers(ctx context.Context, userID string, params dto.ListParams) ([]domain.Buyer, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Buyer), args.Error(1)
}

var _ portssvc.BuyerSvcFacade = (*MockBuyerService)(nil)

// --- Mock EntityService ---
type MockEntityService struct {
	mock.Mock
}

func (m *MockEntityService) CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorUserID string) (*domain.Entity, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) GetEntityByID(ctx context.Context, entityID string, requestingUserID string) (*domain.Entity, error) {
	args := m.Called(ctx, entityID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) ListEntities(ctx context.Context, userID string, params dto.ListParams) ([]domain.Entity, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}

var _ portssvc.EntitySvcFacade = (*MockEntityService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) LoadSettings(ctx context.Context, userID string) (domain.UserSettings, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserSettings), args.Error(1)
}
func (m *MockSettingsService) GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SettingsResponse), args.Error(1)
}
func (m *MockSettingsService) IsFieldVisible(ctx context.Context, userID, configKey, section, field string) (bool, error) {
	args := m.Called(ctx, userID, configKey, section, field)
	return args.Bool(0), args.Error(1)
}
func (m *MockSettingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SettingsResponse), args.Error(1)
}
func (m *MockSettingsService) SetFieldVisibility(ctx context.Context, userID string, req dto.SetVisibilityRequest) (domain.Sections, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Sections), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) BuildInvoiceReport(ctx context.Context, userID, invoiceID, configKey string) (*domain.InvoiceReport, error) {
	args := m.Called(ctx, userID, invoiceID, configKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceReport), args.Error(1)
}
func (m *MockReportService) ExportInvoiceReport(ctx context.Context, userID, invoiceID string) (*dto.ExportReportResponse, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExportReportResponse), args.Error(1)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)
