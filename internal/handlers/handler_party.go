package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
	"github.com/SscSPs/sales_tax_invoicing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler serves the buyers and seller entities referenced by invoices.
type partyHandler struct {
	buyerService  portssvc.BuyerSvcFacade
	entityService portssvc.EntitySvcFacade
}

func newPartyHandler(bs portssvc.BuyerSvcFacade, es portssvc.EntitySvcFacade) *partyHandler {
	return &partyHandler{
		buyerService:  bs,
		entityService: es,
	}
}

// registerPartyRoutes registers the /buyers and /entities routes.
func registerPartyRoutes(rg *gin.RouterGroup, buyerService portssvc.BuyerSvcFacade, entityService portssvc.EntitySvcFacade) {
	h := newPartyHandler(buyerService, entityService)

	buyers := rg.Group("/buyers")
	{
		buyers.POST("", h.createBuyer)
		buyers.GET("", h.listBuyers)
		buyers.GET("/:buyerID", h.getBuyer)
	}

	entities := rg.Group("/entities")
	{
		entities.POST("", h.createEntity)
		entities.GET("", h.listEntities)
		entities.GET("/:entityID", h.getEntity)
	}
}

// createBuyer godoc
// @Summary Create a buyer
// @Description Adds a buyer. Registration type defaults to Registered when an NTN is given.
// @Tags buyers
// @Accept  json
// @Produce  json
// @Param   buyer body dto.CreateBuyerRequest true "Buyer details"
// @Success 201 {object} dto.BuyerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create buyer"
// @Security BearerAuth
// @Router /buyers [post]
func (h *partyHandler) createBuyer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBuyer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	buyer, err := h.buyerService.CreateBuyer(c.Request.Context(), req, userID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to create buyer")
		return
	}

	logger.Info("Buyer created successfully", slog.String("buyer_id", buyer.BuyerID))
	c.JSON(http.StatusCreated, dto.ToBuyerResponse(buyer))
}

// getBuyer godoc
// @Summary Get a buyer by ID
// @Tags buyers
// @Produce  json
// @Param   buyerID path string true "Buyer ID"
// @Success 200 {object} dto.BuyerResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Buyer not found"
// @Security BearerAuth
// @Router /buyers/{buyerID} [get]
func (h *partyHandler) getBuyer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	buyerID := c.Param("buyerID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	buyer, err := h.buyerService.GetBuyerByID(c.Request.Context(), buyerID, userID)
	if err != nil {
		respondWithServiceError(c, logger.With(slog.String("buyer_id", buyerID)), err, "Failed to retrieve buyer")
		return
	}

	c.JSON(http.StatusOK, dto.ToBuyerResponse(buyer))
}

// listBuyers godoc
// @Summary List buyers
// @Tags buyers
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.BuyerResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /buyers [get]
func (h *partyHandler) listBuyers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListBuyers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	buyers, err := h.buyerService.ListBuyers(c.Request.Context(), userID, params)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list buyers")
		return
	}

	c.JSON(http.StatusOK, dto.ToBuyerResponses(buyers))
}

// createEntity godoc
// @Summary Create a seller entity
// @Tags entities
// @Accept  json
// @Produce  json
// @Param   entity body dto.CreateEntityRequest true "Entity details"
// @Success 201 {object} dto.EntityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "NTN already registered"
// @Security BearerAuth
// @Router /entities [post]
func (h *partyHandler) createEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entity, err := h.entityService.CreateEntity(c.Request.Context(), req, userID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to create entity")
		return
	}

	logger.Info("Entity created successfully", slog.String("entity_id", entity.EntityID))
	c.JSON(http.StatusCreated, dto.ToEntityResponse(entity))
}

// getEntity godoc
// @Summary Get a seller entity by ID
// @Tags entities
// @Produce  json
// @Param   entityID path string true "Entity ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entity not found"
// @Security BearerAuth
// @Router /entities/{entityID} [get]
func (h *partyHandler) getEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entity, err := h.entityService.GetEntityByID(c.Request.Context(), entityID, userID)
	if err != nil {
		respondWithServiceError(c, logger.With(slog.String("entity_id", entityID)), err, "Failed to retrieve entity")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// listEntities godoc
// @Summary List seller entities
// @Tags entities
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.EntityResponse
// @Security BearerAuth
// @Router /entities [get]
func (h *partyHandler) listEntities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntities", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entities, err := h.entityService.ListEntities(c.Request.Context(), userID, params)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list entities")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntityResponses(entities))
}
