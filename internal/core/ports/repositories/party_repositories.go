package repositories

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
)

// BuyerReader defines read operations for buyer data
type BuyerReader interface {
	// FindBuyerByID retrieves a specific buyer.
	FindBuyerByID(ctx context.Context, buyerID string) (*domain.Buyer, error)

	// ListBuyersByUser retrieves a paginated list of the buyers a user created.
	ListBuyersByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Buyer, error)
}

// BuyerWriter defines write operations for buyer data
type BuyerWriter interface {
	// SaveBuyer persists a new buyer.
	SaveBuyer(ctx context.Context, buyer domain.Buyer) error
}

// BuyerRepositoryFacade combines all buyer-related repository interfaces
type BuyerRepositoryFacade interface {
	BuyerReader
	BuyerWriter
}

// EntityReader defines read operations for seller entities
type EntityReader interface {
	// FindEntityByID retrieves a specific entity.
	FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)

	// ListEntitiesByUser retrieves the entities a user created.
	ListEntitiesByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Entity, error)
}

// EntityWriter defines write operations for seller entities
type EntityWriter interface {
	// SaveEntity persists a new entity.
	SaveEntity(ctx context.Context, entity domain.Entity) error
}

// EntityRepositoryFacade combines all entity-related repository interfaces
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}
