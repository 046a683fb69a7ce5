package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

const defaultListLimit = 20

// invoiceService creates, reads and recomputes invoices.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	buyerRepo   portsrepo.BuyerReader
	entityRepo  portsrepo.EntityReader
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, buyerRepo portsrepo.BuyerReader, entityRepo portsrepo.EntityReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		BaseService: newBaseService(),
		invoiceRepo: invoiceRepo,
		buyerRepo:   buyerRepo,
		entityRepo:  entityRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice normalizes every item, validates the whole invoice and checks
// that the entity and buyer exist and belong to the creator before saving.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	inv := assignItemIDs(req.ToDomainInvoice()).Normalized()

	if errs := domain.ValidateInvoice(inv); len(errs) > 0 {
		s.LogDebug(ctx, "Invoice failed validation", slog.Int("issues", len(errs)))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, errs)
	}

	entity, err := s.entityRepo.FindEntityByID(ctx, inv.EntityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: entity %s does not exist", apperrors.ErrValidation, inv.EntityID)
		}
		return nil, fmt.Errorf("failed to look up entity %s: %w", inv.EntityID, err)
	}
	if err := s.AuthorizeOwner(ctx, entity.CreatedBy, creatorUserID, "entity", entity.EntityID); err != nil {
		return nil, err
	}
	if !entity.IsActive {
		return nil, fmt.Errorf("%w: entity %s is inactive", apperrors.ErrValidation, entity.EntityID)
	}

	buyer, err := s.buyerRepo.FindBuyerByID(ctx, inv.BuyerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: buyer %s does not exist", apperrors.ErrValidation, inv.BuyerID)
		}
		return nil, fmt.Errorf("failed to look up buyer %s: %w", inv.BuyerID, err)
	}
	if err := s.AuthorizeOwner(ctx, buyer.CreatedBy, creatorUserID, "buyer", buyer.BuyerID); err != nil {
		return nil, err
	}

	now := s.Now()
	inv.InvoiceID = uuid.NewString()
	inv.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_number", inv.InvoiceNumber))
		return nil, fmt.Errorf("failed to save invoice %s: %w", inv.InvoiceNumber, err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("invoice_number", inv.InvoiceNumber),
		slog.Int("items", len(inv.Items)),
		slog.String("total", inv.TotalInvoiceValue().StringFixed(2)))
	return &inv, nil
}

// GetInvoiceByID retrieves an invoice owned by requestingUserID.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string, requestingUserID string) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	if err := s.AuthorizeOwner(ctx, inv.CreatedBy, requestingUserID, "invoice", invoiceID); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListInvoices retrieves a page of the user's invoices with their items.
func (s *invoiceService) ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	invoices, nextToken, err := s.invoiceRepo.ListInvoicesByUser(ctx, userID, limit, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	ids := make([]string, len(invoices))
	for i, inv := range invoices {
		ids[i] = inv.InvoiceID
	}
	items, err := s.invoiceRepo.FindItemsByInvoiceIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice items: %w", err)
	}
	for i := range invoices {
		invoices[i].Items = items[invoices[i].InvoiceID]
	}

	return &dto.ListInvoicesResponse{
		Invoices:  dto.ToInvoiceResponses(invoices),
		NextToken: nextToken,
	}, nil
}

// DeleteInvoice removes an invoice owned by requestingUserID.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, requestingUserID string) error {
	if _, err := s.GetInvoiceByID(ctx, invoiceID, requestingUserID); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

// PreviewInvoice recomputes an unsaved invoice exactly as CreateInvoice would
// and reports its totals and validation issues without persisting anything.
func (s *invoiceService) PreviewInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoicePreviewResponse, error) {
	inv := assignItemIDs(req.ToDomainInvoice()).Normalized()
	resp := dto.ToInvoicePreviewResponse(inv)
	return &resp, nil
}

// RecomputeItem applies a single field edit, or recomputes for an explicit
// changed-field set when no field is named.
func (s *invoiceService) RecomputeItem(ctx context.Context, req dto.RecomputeItemRequest) (*dto.LineItemResponse, error) {
	item := req.Item.ToDomainLineItem()

	if req.Field != "" {
		field, ok := domain.ParseFieldName(req.Field)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", apperrors.ErrValidation, req.Field)
		}
		item = domain.ApplyItemEdit(item, domain.ItemEdit{Field: field, Value: req.Value})
	} else {
		changed := domain.NewFieldSet()
		for _, name := range req.ChangedFields {
			field, ok := domain.ParseFieldName(name)
			if !ok {
				return nil, fmt.Errorf("%w: unknown field %q", apperrors.ErrValidation, name)
			}
			changed[field] = struct{}{}
		}
		item = domain.Recompute(item, changed, req.AllowTaxRecalc)
	}

	resp := dto.ToLineItemResponse(item)
	return &resp, nil
}

// assignItemIDs gives every item without an id a fresh one.
func assignItemIDs(inv domain.Invoice) domain.Invoice {
	for i := range inv.Items {
		if strings.TrimSpace(inv.Items[i].ItemID) == "" {
			inv.Items[i].ItemID = uuid.NewString()
		}
	}
	return inv
}
