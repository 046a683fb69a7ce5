package services

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

// CatalogSvc exposes the fixed option lists of the invoice form.
type CatalogSvc interface {
	GetCatalog(ctx context.Context) dto.CatalogResponse
	ResolveCurrency(ctx context.Context, preference string) domain.CurrencyDisplay
}
