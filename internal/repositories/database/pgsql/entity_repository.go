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

const entityColumns = `entity_id, name, ntn, strn, address, province, phone, email, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEntityRepository struct {
	BaseRepository
}

func newPgxEntityRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	m := mapping.ToModelEntity(entity)
	query := `INSERT INTO entities (` + entityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.Pool.Exec(ctx, query,
		m.EntityID,
		m.Name,
		m.NTN,
		m.STRN,
		m.Address,
		m.Province,
		m.Phone,
		m.Email,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "an entity with NTN "+m.NTN+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert entity "+m.EntityID, err)
	}
	return nil
}

func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE entity_id = $1;`
	m, err := scanEntity(r.Pool.QueryRow(ctx, query, entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entity by ID "+entityID, err)
	}
	e := mapping.ToDomainEntity(m)
	return &e, nil
}

func (r *PgxEntityRepository) ListEntitiesByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Entity, error) {
	query := `SELECT ` + entityColumns + `
		FROM entities
		WHERE created_by = $1
		ORDER BY name, entity_id
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entities for user "+userID, err)
	}
	defer rows.Close()

	entities := []domain.Entity{}
	for rows.Next() {
		m, err := scanEntity(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entity row", err)
		}
		entities = append(entities, mapping.ToDomainEntity(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entity rows", err)
	}
	return entities, nil
}

func scanEntity(row pgx.Row) (models.Entity, error) {
	var m models.Entity
	err := row.Scan(
		&m.EntityID,
		&m.Name,
		&m.NTN,
		&m.STRN,
		&m.Address,
		&m.Province,
		&m.Phone,
		&m.Email,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
