package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time; tests replace it for stable audit fields.
	Now func() time.Time
}

func newBaseService() BaseService {
	return BaseService{Now: func() time.Time { return time.Now().UTC() }}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner rejects access to a resource created by another user.
func (s *BaseService) AuthorizeOwner(ctx context.Context, ownerID, userID, resource, resourceID string) error {
	if ownerID == userID {
		return nil
	}
	s.GetLogger(ctx).Warn("Ownership check failed",
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("user_id", userID))
	return fmt.Errorf("%w: %s %s belongs to another user", apperrors.ErrForbidden, resource, resourceID)
}
