package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

type buyerService struct {
	BaseService
	buyerRepo portsrepo.BuyerRepositoryFacade
}

// NewBuyerService creates a new buyer service.
func NewBuyerService(buyerRepo portsrepo.BuyerRepositoryFacade) portssvc.BuyerSvcFacade {
	return &buyerService{BaseService: newBaseService(), buyerRepo: buyerRepo}
}

var _ portssvc.BuyerSvcFacade = (*buyerService)(nil)

func (s *buyerService) CreateBuyer(ctx context.Context, req dto.CreateBuyerRequest, creatorUserID string) (*domain.Buyer, error) {
	buyer := req.ToDomainBuyer()
	if buyer.RegistrationType == domain.RegistrationRegistered && buyer.NTN == "" {
		return nil, fmt.Errorf("%w: a registered buyer needs an NTN", apperrors.ErrValidation)
	}

	now := s.Now()
	buyer.BuyerID = uuid.NewString()
	buyer.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.buyerRepo.SaveBuyer(ctx, buyer); err != nil {
		s.LogError(ctx, err, "Failed to save buyer", slog.String("name", buyer.Name))
		return nil, fmt.Errorf("failed to save buyer: %w", err)
	}
	s.LogInfo(ctx, "Buyer created", slog.String("buyer_id", buyer.BuyerID))
	return &buyer, nil
}

func (s *buyerService) GetBuyerByID(ctx context.Context, buyerID string, requestingUserID string) (*domain.Buyer, error) {
	buyer, err := s.buyerRepo.FindBuyerByID(ctx, buyerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get buyer", slog.String("buyer_id", buyerID))
		}
		return nil, fmt.Errorf("failed to get buyer %s: %w", buyerID, err)
	}
	if err := s.AuthorizeOwner(ctx, buyer.CreatedBy, requestingUserID, "buyer", buyerID); err != nil {
		return nil, err
	}
	return buyer, nil
}

func (s *buyerService) ListBuyers(ctx context.Context, userID string, params dto.ListParams) ([]domain.Buyer, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	buyers, err := s.buyerRepo.ListBuyersByUser(ctx, userID, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list buyers: %w", err)
	}
	return buyers, nil
}

type entityService struct {
	BaseService
	entityRepo portsrepo.EntityRepositoryFacade
}

// NewEntityService creates a new seller entity service.
func NewEntityService(entityRepo portsrepo.EntityRepositoryFacade) portssvc.EntitySvcFacade {
	return &entityService{BaseService: newBaseService(), entityRepo: entityRepo}
}

var _ portssvc.EntitySvcFacade = (*entityService)(nil)

func (s *entityService) CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorUserID string) (*domain.Entity, error) {
	entity := req.ToDomainEntity()

	now := s.Now()
	entity.EntityID = uuid.NewString()
	entity.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.entityRepo.SaveEntity(ctx, entity); err != nil {
		s.LogError(ctx, err, "Failed to save entity", slog.String("ntn", entity.NTN))
		return nil, fmt.Errorf("failed to save entity: %w", err)
	}
	s.LogInfo(ctx, "Entity created", slog.String("entity_id", entity.EntityID))
	return &entity, nil
}

func (s *entityService) GetEntityByID(ctx context.Context, entityID string, requestingUserID string) (*domain.Entity, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get entity", slog.String("entity_id", entityID))
		}
		return nil, fmt.Errorf("failed to get entity %s: %w", entityID, err)
	}
	if err := s.AuthorizeOwner(ctx, entity.CreatedBy, requestingUserID, "entity", entityID); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *entityService) ListEntities(ctx context.Context, userID string, params dto.ListParams) ([]domain.Entity, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	entities, err := s.entityRepo.ListEntitiesByUser(ctx, userID, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	return entities, nil
}
