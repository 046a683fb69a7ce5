package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a service over the per-user settings document.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{BaseService: newBaseService(), settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// LoadSettings returns the stored settings; a user who never saved any gets
// the defaults.
func (s *settingsService) LoadSettings(ctx context.Context, userID string) (domain.UserSettings, error) {
	stored, err := s.settingsRepo.FindSettingsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.UserSettings{UserID: userID, Currency: domain.CurrencyPKR}, nil
		}
		s.LogError(ctx, err, "Failed to load settings", slog.String("user_id", userID))
		return domain.UserSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return *stored, nil
}

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error) {
	settings, err := s.LoadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToSettingsResponse(settings)
	return &resp, nil
}

func (s *settingsService) IsFieldVisible(ctx context.Context, userID, configKey, section, field string) (bool, error) {
	settings, err := s.LoadSettings(ctx, userID)
	if err != nil {
		return false, err
	}
	return settings.Registry().IsVisible(configKey, section, field), nil
}

// UpdateSettings merges a partial document into the stored settings. Nothing
// is changed when persisting fails.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	current, err := s.LoadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	registry := current.Registry()
	registry.Apply(req.Settings.Configs)

	updated := current
	updated.Configs = registry.Overrides()
	if req.Settings.Currency != nil {
		updated.Currency = domain.ResolveSymbol(*req.Settings.Currency).IsoLikeLabel
	}
	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}

	resp := dto.ToSettingsResponse(updated)
	return &resp, nil
}

// SetFieldVisibility toggles one field; required fields stay visible.
func (s *settingsService) SetFieldVisibility(ctx context.Context, userID string, req dto.SetVisibilityRequest) (domain.Sections, error) {
	if req.Visible == nil {
		return nil, fmt.Errorf("%w: visible is required", apperrors.ErrValidation)
	}
	defaults, ok := domain.DefaultFieldConfig()[req.ConfigKey]
	if !ok {
		return nil, fmt.Errorf("%w: unknown config key %q", apperrors.ErrValidation, req.ConfigKey)
	}
	if _, ok := defaults[req.Section]; !ok {
		return nil, fmt.Errorf("%w: unknown section %q", apperrors.ErrValidation, req.Section)
	}

	current, err := s.LoadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	registry := current.Registry()
	sections := registry.SetVisibility(req.ConfigKey, req.Section, req.Field, *req.Visible)

	updated := current
	updated.Configs = registry.Overrides()
	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *settingsService) persist(ctx context.Context, settings domain.UserSettings) error {
	now := s.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
		settings.CreatedBy = settings.UserID
	}
	settings.LastUpdatedAt = now
	settings.LastUpdatedBy = settings.UserID

	if err := s.settingsRepo.UpsertSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings", slog.String("user_id", settings.UserID))
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.LogDebug(ctx, "Settings saved", slog.String("user_id", settings.UserID))
	return nil
}
