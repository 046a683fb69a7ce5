package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuyerService_CreateBuyer(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBuyerRepository)
	svc := services.NewBuyerService(repo)

	repo.On("SaveBuyer", ctx, mock.MatchedBy(func(b domain.Buyer) bool {
		return b.BuyerID != "" && b.CreatedBy == "user-1" && b.RegistrationType == domain.RegistrationRegistered
	})).Return(nil).Once()

	buyer, err := svc.CreateBuyer(ctx, dto.CreateBuyerRequest{Name: " Acme Traders ", NTN: "1234567-8"}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", buyer.Name)
	assert.Equal(t, domain.RegistrationRegistered, buyer.RegistrationType)
	repo.AssertExpectations(t)
}

func TestBuyerService_CreateBuyer_RegisteredWithoutNTN(t *testing.T) {
	repo := new(MockBuyerRepository)
	svc := services.NewBuyerService(repo)

	_, err := svc.CreateBuyer(context.Background(), dto.CreateBuyerRequest{Name: "Acme", RegistrationType: "Registered"}, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveBuyer", mock.Anything, mock.Anything)
}

func TestBuyerService_GetAndList(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBuyerRepository)
	svc := services.NewBuyerService(repo)
	stored := &domain.Buyer{BuyerID: "b-1", AuditFields: domain.AuditFields{CreatedBy: "user-1"}}

	repo.On("FindBuyerByID", ctx, "b-1").Return(stored, nil)
	repo.On("ListBuyersByUser", ctx, "user-1", 20, 0).Return([]domain.Buyer{*stored}, nil).Once()
	repo.On("ListBuyersByUser", ctx, "user-1", 5, 10).Return(nil, assert.AnError).Once()

	got, err := svc.GetBuyerByID(ctx, "b-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = svc.GetBuyerByID(ctx, "b-1", "user-2")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	list, err := svc.ListBuyers(ctx, "user-1", dto.ListParams{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListBuyers(ctx, "user-1", dto.ListParams{Limit: 5, Offset: 10})
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertExpectations(t)
}

func TestEntityService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEntityRepository)
	svc := services.NewEntityService(repo)

	repo.On("SaveEntity", ctx, mock.MatchedBy(func(e domain.Entity) bool {
		return e.EntityID != "" && e.IsActive && e.CreatedBy == "user-1"
	})).Return(nil).Once()
	repo.On("FindEntityByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	entity, err := svc.CreateEntity(ctx, dto.CreateEntityRequest{Name: "Seller Ltd", NTN: "7654321-0"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "7654321-0", entity.NTN)

	_, err = svc.GetEntityByID(ctx, "missing", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestEntityService_SaveDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEntityRepository)
	svc := services.NewEntityService(repo)
	repo.On("SaveEntity", ctx, mock.AnythingOfType("domain.Entity")).
		Return(apperrors.NewAppError(409, "an entity with NTN 7654321-0 already exists", apperrors.ErrDuplicate)).Once()

	entity, err := svc.CreateEntity(ctx, dto.CreateEntityRequest{Name: "Seller Ltd", NTN: "7654321-0"}, "user-1")

	assert.Nil(t, entity)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
