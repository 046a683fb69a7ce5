package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
	"github.com/SscSPs/sales_tax_invoicing/internal/models"
	"github.com/SscSPs/sales_tax_invoicing/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, configs, currency, created_at, last_updated_at
		FROM user_settings
		WHERE user_id = $1;
	`
	var m models.UserSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Configs,
		&m.Currency,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find settings for user "+userID, err)
	}

	settings, err := mapping.ToDomainSettings(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "stored settings for user "+userID+" are corrupt", err)
	}
	return &settings, nil
}

// UpsertSettings writes the whole settings document; created_at survives updates.
func (r *PgxSettingsRepository) UpsertSettings(ctx context.Context, settings domain.UserSettings) error {
	m, err := mapping.ToModelSettings(settings)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode settings for user "+settings.UserID, err)
	}
	query := `
		INSERT INTO user_settings (user_id, configs, currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET configs = EXCLUDED.configs,
		    currency = EXCLUDED.currency,
		    last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err = r.Pool.Exec(ctx, query, m.UserID, m.Configs, m.Currency, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert settings for user "+m.UserID, err)
	}
	return nil
}
