package services

import (
	"context"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

// SettingsReaderSvc defines read operations for user settings
type SettingsReaderSvc interface {
	// LoadSettings returns the stored settings, or empty settings for a new user.
	LoadSettings(ctx context.Context, userID string) (domain.UserSettings, error)

	// GetSettings returns the effective settings of a user.
	GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error)

	// IsFieldVisible answers a visibility query against the user's effective config.
	IsFieldVisible(ctx context.Context, userID, configKey, section, field string) (bool, error)
}

// SettingsWriterSvc defines write operations for user settings
type SettingsWriterSvc interface {
	// UpdateSettings merges a partial settings document into the stored one.
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)

	// SetFieldVisibility toggles one field and returns the section set it belongs to.
	SetFieldVisibility(ctx context.Context, userID string, req dto.SetVisibilityRequest) (domain.Sections, error)
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
