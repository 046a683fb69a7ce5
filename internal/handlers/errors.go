package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
	"github.com/SscSPs/sales_tax_invoicing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithServiceError maps a service error onto an HTTP response.
// fallback is the message used for unexpected failures so internals never leak.
func respondWithServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var appErr *apperrors.AppError
	var invalid domain.ValidationErrors

	switch {
	case errors.As(err, &invalid):
		logger.Warn("Invoice failed validation", slog.Int("issues", len(invalid)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice is not valid", "issues": dto.ToValidationIssues(invalid)})
	case errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError:
		logger.Warn("Request rejected", slog.String("error", err.Error()), slog.Int("status", appErr.Code))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Access denied", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &appErr):
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", appErr.Code))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// requireUserID reads the authenticated user or writes a 401.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
