package services

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

// BuyerSvcFacade manages the buyers a user invoices.
type BuyerSvcFacade interface {
	CreateBuyer(ctx context.Context, req dto.CreateBuyerRequest, creatorUserID string) (*domain.Buyer, error)
	GetBuyerByID(ctx context.Context, buyerID string, requestingUserID string) (*domain.Buyer, error)
	ListBuyers(ctx context.Context, userID string, params dto.ListParams) ([]domain.Buyer, error)
}

// EntitySvcFacade manages the seller entities a user issues invoices from.
type EntitySvcFacade interface {
	CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorUserID string) (*domain.Entity, error)
	GetEntityByID(ctx context.Context, entityID string, requestingUserID string) (*domain.Entity, error)
	ListEntities(ctx context.Context, userID string, params dto.ListParams) ([]domain.Entity, error)
}
