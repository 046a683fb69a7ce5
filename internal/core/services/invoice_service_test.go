package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func amount(s string) dto.Amount {
	return dto.NewAmount(decimal.RequireFromString(s))
}

func validItemRequest() dto.LineItemRequest {
	return dto.LineItemRequest{
		HSCode:      "2523.2900",
		Description: "Portland cement",
		SaleType:    string(domain.SaleTypeStandardRate),
		UOM:         "Bag",
		Quantity:    amount("2"),
		UnitPrice:   amount("100"),
		Rate:        "18%",
		SalesValue:  amount("200"),
		SalesTax:    amount("36"),
	}
}

func validInvoiceRequest(entityID, buyerID string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		EntityID:      entityID,
		InvoiceNumber: "INV-001",
		Date:          "2024-03-01",
		DocumentType:  string(domain.DocumentSaleInvoice),
		BuyerID:       buyerID,
		Items:         []dto.LineItemRequest{validItemRequest()},
	}
}

type InvoiceServiceTestSuite struct {
	suite.Suite
	invoiceRepo *MockInvoiceRepository
	buyerRepo   *MockBuyerRepository
	entityRepo  *MockEntityRepository
	service     portssvc.InvoiceSvcFacade

	ctx      context.Context
	userID   string
	entityID string
	buyerID  string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.invoiceRepo = new(MockInvoiceRepository)
	suite.buyerRepo = new(MockBuyerRepository)
	suite.entityRepo = new(MockEntityRepository)
	suite.service = services.NewInvoiceService(suite.invoiceRepo, suite.buyerRepo, suite.entityRepo)

	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
	suite.entityID = uuid.NewString()
	suite.buyerID = uuid.NewString()
}

func (suite *InvoiceServiceTestSuite) expectParties() {
	suite.entityRepo.On("FindEntityByID", suite.ctx, suite.entityID).Return(&domain.Entity{
		EntityID:    suite.entityID,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedBy: suite.userID},
	}, nil).Once()
	suite.buyerRepo.On("FindBuyerByID", suite.ctx, suite.buyerID).Return(&domain.Buyer{
		BuyerID:     suite.buyerID,
		AuditFields: domain.AuditFields{CreatedBy: suite.userID},
	}, nil).Once()
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	suite.expectParties()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID != "" &&
			inv.CreatedBy == suite.userID &&
			len(inv.Items) == 1 &&
			inv.Items[0].ItemID != "" &&
			inv.Items[0].TotalItemValue.Equal(decimal.NewFromInt(236))
	})).Return(nil).Once()

	inv, err := suite.service.CreateInvoice(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(inv)
	suite.Equal("INV-001", inv.InvoiceNumber)
	suite.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), inv.InvoiceDate)
	suite.True(inv.TotalInvoiceValue().Equal(decimal.NewFromInt(236)))
	suite.invoiceRepo.AssertExpectations(suite.T())
	suite.entityRepo.AssertExpectations(suite.T())
	suite.buyerRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_KeepsManualSalesTax() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	req.Items[0].SalesTax = amount("30")
	suite.expectParties()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	inv, err := suite.service.CreateInvoice(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(inv.Items[0].SalesTax.Equal(decimal.NewFromInt(30)))
	suite.True(inv.Items[0].TotalItemValue.Equal(decimal.NewFromInt(230)))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ValidationErrors() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	req.InvoiceNumber = ""
	req.Items[0].UOM = domain.PlaceholderUOM
	req.Items[0].SaleType = string(domain.SaleTypeReducedRate)

	inv, err := suite.service.CreateInvoice(suite.ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(inv)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, domain.ErrInvoiceNumberMissing)
	suite.ErrorIs(err, domain.ErrUOMMissing)
	suite.ErrorIs(err, domain.ErrSROScheduleMissing)

	var verrs domain.ValidationErrors
	suite.Require().True(errors.As(err, &verrs))
	suite.Len(verrs, 4)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownBuyer() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	suite.entityRepo.On("FindEntityByID", suite.ctx, suite.entityID).Return(&domain.Entity{
		EntityID: suite.entityID, IsActive: true, AuditFields: domain.AuditFields{CreatedBy: suite.userID},
	}, nil).Once()
	suite.buyerRepo.On("FindBuyerByID", suite.ctx, suite.buyerID).Return(nil, apperrors.ErrNotFound).Once()

	inv, err := suite.service.CreateInvoice(suite.ctx, req, suite.userID)

	suite.Nil(inv)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ForeignEntity() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	suite.entityRepo.On("FindEntityByID", suite.ctx, suite.entityID).Return(&domain.Entity{
		EntityID: suite.entityID, IsActive: true, AuditFields: domain.AuditFields{CreatedBy: "someone-else"},
	}, nil).Once()

	_, err := suite.service.CreateInvoice(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_SaveError() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	suite.expectParties()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice")).Return(apperrors.ErrDuplicate).Once()

	inv, err := suite.service.CreateInvoice(suite.ctx, req, suite.userID)

	suite.Nil(inv)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID() {
	stored := &domain.Invoice{InvoiceID: "inv-1", AuditFields: domain.AuditFields{CreatedBy: suite.userID}}
	suite.invoiceRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(stored, nil)
	suite.invoiceRepo.On("FindInvoiceByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	inv, err := suite.service.GetInvoiceByID(suite.ctx, "inv-1", suite.userID)
	suite.Require().NoError(err)
	suite.Equal(stored, inv)

	_, err = suite.service.GetInvoiceByID(suite.ctx, "inv-1", "intruder")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.GetInvoiceByID(suite.ctx, "missing", suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_AttachesItems() {
	token := "next-page"
	invoices := []domain.Invoice{{InvoiceID: "a"}, {InvoiceID: "b"}}
	items := map[string][]domain.LineItem{
		"a": {{ItemID: "a1", TotalItemValue: decimal.NewFromInt(10)}},
		"b": {{ItemID: "b1", TotalItemValue: decimal.NewFromInt(5)}, {ItemID: "b2", TotalItemValue: decimal.NewFromInt(7)}},
	}
	suite.invoiceRepo.On("ListInvoicesByUser", suite.ctx, suite.userID, 20, (*string)(nil)).Return(invoices, &token, nil).Once()
	suite.invoiceRepo.On("FindItemsByInvoiceIDs", suite.ctx, []string{"a", "b"}).Return(items, nil).Once()

	resp, err := suite.service.ListInvoices(suite.ctx, suite.userID, dto.ListInvoicesParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Invoices, 2)
	suite.Equal(&token, resp.NextToken)
	suite.True(resp.Invoices[1].TotalInvoiceValue.Equal(decimal.NewFromInt(12)))
	suite.invoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice() {
	stored := &domain.Invoice{InvoiceID: "inv-1", AuditFields: domain.AuditFields{CreatedBy: suite.userID}}
	suite.invoiceRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(stored, nil)
	suite.invoiceRepo.On("DeleteInvoice", suite.ctx, "inv-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteInvoice(suite.ctx, "inv-1", suite.userID))
	suite.ErrorIs(suite.service.DeleteInvoice(suite.ctx, "inv-1", "intruder"), apperrors.ErrForbidden)
	suite.invoiceRepo.AssertNumberOfCalls(suite.T(), "DeleteInvoice", 1)
}

func (suite *InvoiceServiceTestSuite) TestPreviewInvoice() {
	req := validInvoiceRequest(suite.entityID, "")
	req.Items = append(req.Items, dto.LineItemRequest{Discount: amount("-5")})

	resp, err := suite.service.PreviewInvoice(suite.ctx, req)

	suite.Require().NoError(err)
	suite.False(resp.Submittable)
	suite.NotEmpty(resp.Issues)
	suite.Require().Len(resp.Items, 2)
	suite.NotEmpty(resp.Items[1].ItemID)
	suite.True(resp.Items[1].Discount.IsZero(), "negative adjustments clamp to zero")
	suite.True(resp.TotalInvoiceValue.Equal(decimal.NewFromInt(236)))
	suite.True(resp.Totals.GrandTotal.Equal(decimal.NewFromInt(236)))
	suite.buyerRepo.AssertNotCalled(suite.T(), "FindBuyerByID", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestRecomputeItem_FieldEdit() {
	item := validItemRequest()

	resp, err := suite.service.RecomputeItem(suite.ctx, dto.RecomputeItemRequest{Item: item, Field: "quantity", Value: "3"})

	suite.Require().NoError(err)
	suite.True(resp.SalesValue.Equal(decimal.NewFromInt(300)))
	suite.True(resp.SalesTax.Equal(decimal.NewFromInt(54)))
	suite.True(resp.TotalItemValue.Equal(decimal.NewFromInt(354)))
	suite.Equal("PERCENTAGE", resp.RateKind)
}

func (suite *InvoiceServiceTestSuite) TestRecomputeItem_ChangedFields() {
	item := validItemRequest()
	item.SalesValue = amount("500")

	resp, err := suite.service.RecomputeItem(suite.ctx, dto.RecomputeItemRequest{
		Item:           item,
		ChangedFields:  []string{"salesValue"},
		AllowTaxRecalc: true,
	})

	suite.Require().NoError(err)
	suite.True(resp.UnitPrice.Equal(decimal.NewFromInt(250)))
	suite.True(resp.SalesTax.Equal(decimal.NewFromInt(90)))
}

func (suite *InvoiceServiceTestSuite) TestRecomputeItem_UnknownField() {
	_, err := suite.service.RecomputeItem(suite.ctx, dto.RecomputeItemRequest{Item: validItemRequest(), Field: "colour", Value: "red"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RecomputeItem(suite.ctx, dto.RecomputeItemRequest{Item: validItemRequest(), ChangedFields: []string{"colour"}})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestRecomputeItem_UnsetSelectsStayEmpty() {
	item := validItemRequest()
	item.SaleType = ""
	item.UOM = ""
	item.Rate = ""

	resp, err := suite.service.RecomputeItem(suite.ctx, dto.RecomputeItemRequest{Item: item, Field: "quantity", Value: "4"})

	suite.Require().NoError(err)
	suite.Equal("", resp.SaleType)
	suite.Equal("", resp.UOM)
	suite.Equal("", resp.Rate)
	suite.Equal("", resp.SROScheduleNo)
	suite.Equal("", resp.SROItemSerialNo)
	suite.Equal("UNSET", resp.RateKind)
}

func (suite *InvoiceServiceTestSuite) TestPreviewInvoice_UnsetSelectsStayEmpty() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	req.Items = append(req.Items, dto.LineItemRequest{})

	resp, err := suite.service.PreviewInvoice(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Items, 2)
	suite.Equal(string(domain.SaleTypeStandardRate), resp.Items[0].SaleType)
	suite.Equal("", resp.Items[0].SROScheduleNo)
	blank := resp.Items[1]
	suite.Equal("", blank.SaleType)
	suite.Equal("", blank.UOM)
	suite.Equal("", blank.Rate)
	suite.Equal("", blank.SROScheduleNo)
	suite.Equal("", blank.SROItemSerialNo)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateItemIDs() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	req.Items[0].ItemID = "row-1"
	second := validItemRequest()
	second.ItemID = "row-1"
	req.Items = append(req.Items, second)

	_, err := suite.service.CreateInvoice(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, domain.ErrItemIDDuplicate)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ClientItemIDsAreKept() {
	req := validInvoiceRequest(suite.entityID, suite.buyerID)
	req.Items[0].ItemID = "1"
	suite.expectParties()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return len(inv.Items) == 1 && inv.Items[0].ItemID == "1"
	})).Return(nil).Once()

	inv, err := suite.service.CreateInvoice(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1", inv.Items[0].ItemID)
	suite.invoiceRepo.AssertExpectations(suite.T())
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func TestInvoiceService_PreviewMatchesCreate(t *testing.T) {
	svc := services.NewInvoiceService(new(MockInvoiceRepository), new(MockBuyerRepository), new(MockEntityRepository))
	req := validInvoiceRequest("e", "b")

	resp, err := svc.PreviewInvoice(context.Background(), req)

	assert.NoError(t, err)
	assert.True(t, resp.Submittable)
	assert.Empty(t, resp.Issues)
}
