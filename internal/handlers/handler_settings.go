package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
	"github.com/SscSPs/sales_tax_invoicing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles the per-user display settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers routes under /users/settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/users/settings")
	{
		settings.GET("", h.getSettings)
		settings.PATCH("", h.updateSettings)
		settings.GET("/visibility", h.getFieldVisibility)
		settings.PUT("/visibility", h.setFieldVisibility)
	}
}

// getSettings godoc
// @Summary Get the caller's settings
// @Description Returns the effective field configs (defaults merged with saved overrides) and display currency.
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Security BearerAuth
// @Router /users/settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.settingsService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateSettings godoc
// @Summary Update the caller's settings
// @Description Merges a partial settings document over the saved one. Fields not mentioned keep their current values.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Security BearerAuth
// @Router /users/settings [patch]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.settingsService.UpdateSettings(c.Request.Context(), userID, req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to update settings")
		return
	}

	logger.Info("Settings updated")
	c.JSON(http.StatusOK, resp)
}

// getFieldVisibility godoc
// @Summary Check whether a field is visible
// @Tags settings
// @Produce  json
// @Param   configKey query string true "Config key, e.g. invoicePreview"
// @Param   section query string true "Section name"
// @Param   field query string true "Field key"
// @Success 200 {object} dto.FieldVisibilityResponse
// @Failure 400 {object} map[string]string "Missing query parameters"
// @Security BearerAuth
// @Router /users/settings/visibility [get]
func (h *settingsHandler) getFieldVisibility(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.FieldVisibilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	visible, err := h.settingsService.IsFieldVisible(c.Request.Context(), userID, q.ConfigKey, q.Section, q.Field)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, dto.FieldVisibilityResponse{
		ConfigKey: q.ConfigKey,
		Section:   q.Section,
		Field:     q.Field,
		Visible:   visible,
	})
}

// setFieldVisibility godoc
// @Summary Show or hide a field
// @Description Toggles one field and saves it. Required fields always stay visible.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   toggle body dto.SetVisibilityRequest true "Field to toggle"
// @Success 200 {object} dto.SectionsResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown config"
// @Security BearerAuth
// @Router /users/settings/visibility [put]
func (h *settingsHandler) setFieldVisibility(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetFieldVisibility", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("config_key", req.ConfigKey), slog.String("section", req.Section), slog.String("field", req.Field))
	sections, err := h.settingsService.SetFieldVisibility(c.Request.Context(), userID, req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to update field visibility")
		return
	}

	logger.Info("Field visibility updated", slog.Bool("visible", *req.Visible))
	c.JSON(http.StatusOK, dto.SectionsResponse{ConfigKey: req.ConfigKey, Sections: sections})
}
