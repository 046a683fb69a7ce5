package repositories

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
)

// SettingsRepositoryFacade persists per-user settings.
type SettingsRepositoryFacade interface {
	// FindSettingsByUserID returns apperrors.ErrNotFound when the user never saved settings.
	FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error)

	// UpsertSettings replaces the stored settings of settings.UserID.
	UpsertSettings(ctx context.Context, settings domain.UserSettings) error
}
