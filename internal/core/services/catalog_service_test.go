package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestCatalogService(t *testing.T) {
	svc := services.NewCatalogService()
	ctx := context.Background()

	catalog := svc.GetCatalog(ctx)
	assert.Len(t, catalog.SaleTypes, len(domain.SaleTypes))
	assert.Equal(t, []string{string(domain.SaleTypeReducedRate)}, catalog.SROSaleTypes)
	assert.Equal(t, domain.PlaceholderRate, catalog.Placeholders.Rate)
	assert.Equal(t, domain.CurrencyPKR, catalog.Currencies[0].CurrencyCode)

	assert.Equal(t, domain.CurrencyDisplay{Symbol: "$", IsoLikeLabel: "USD"}, svc.ResolveCurrency(ctx, "usd"))
	assert.Equal(t, domain.CurrencyDisplay{Symbol: "Rs.", IsoLikeLabel: "PKR"}, svc.ResolveCurrency(ctx, ""))
}
