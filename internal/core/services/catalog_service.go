package services

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

type catalogService struct {
	catalog dto.CatalogResponse
}

// NewCatalogService snapshots the option lists once; they never change at runtime.
func NewCatalogService() portssvc.CatalogSvc {
	return &catalogService{catalog: dto.NewCatalogResponse()}
}

var _ portssvc.CatalogSvc = (*catalogService)(nil)

func (s *catalogService) GetCatalog(ctx context.Context) dto.CatalogResponse {
	return s.catalog
}

func (s *catalogService) ResolveCurrency(ctx context.Context, preference string) domain.CurrencyDisplay {
	return domain.ResolveSymbol(preference)
}
