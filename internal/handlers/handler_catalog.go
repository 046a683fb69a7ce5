package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type catalogHandler struct {
	catalogService portssvc.CatalogSvc
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvc) {
	h := &catalogHandler{catalogService: catalogService}

	rg.GET("/catalog", h.getCatalog)
	rg.GET("/currencies/resolve", h.resolveCurrency)
}

// getCatalog godoc
// @Summary List invoice form options
// @Description Sale types, units of measure, rates, document types, provinces and currencies.
// @Tags catalog
// @Produce  json
// @Success 200 {object} dto.CatalogResponse
// @Security BearerAuth
// @Router /catalog [get]
func (h *catalogHandler) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.GetCatalog(c.Request.Context()))
}

// resolveCurrency godoc
// @Summary Resolve a currency preference
// @Description Maps a free-text currency preference to the symbol and label used for display.
// @Tags catalog
// @Produce  json
// @Param   preference query string false "Currency preference, e.g. USD"
// @Success 200 {object} domain.CurrencyDisplay
// @Security BearerAuth
// @Router /currencies/resolve [get]
func (h *catalogHandler) resolveCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ResolveCurrency(c.Request.Context(), c.Query("preference")))
}
