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

const buyerColumns = `buyer_id, name, ntn, cnic, strn, address, province, registration_type, phone, email,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBuyerRepository struct {
	BaseRepository
}

func newPgxBuyerRepository(pool *pgxpool.Pool) portsrepo.BuyerRepositoryFacade {
	return &PgxBuyerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BuyerRepositoryFacade = (*PgxBuyerRepository)(nil)

func (r *PgxBuyerRepository) SaveBuyer(ctx context.Context, buyer domain.Buyer) error {
	m := mapping.ToModelBuyer(buyer)
	query := `INSERT INTO buyers (` + buyerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	_, err := r.Pool.Exec(ctx, query,
		m.BuyerID,
		m.Name,
		m.NTN,
		m.CNIC,
		m.STRN,
		m.Address,
		m.Province,
		m.RegistrationType,
		m.Phone,
		m.Email,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "buyer "+m.BuyerID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert buyer "+m.BuyerID, err)
	}
	return nil
}

func (r *PgxBuyerRepository) FindBuyerByID(ctx context.Context, buyerID string) (*domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE buyer_id = $1;`
	m, err := scanBuyer(r.Pool.QueryRow(ctx, query, buyerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find buyer by ID "+buyerID, err)
	}
	b := mapping.ToDomainBuyer(m)
	return &b, nil
}

func (r *PgxBuyerRepository) ListBuyersByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + `
		FROM buyers
		WHERE created_by = $1
		ORDER BY name, buyer_id
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query buyers for user "+userID, err)
	}
	defer rows.Close()

	buyers := []domain.Buyer{}
	for rows.Next() {
		m, err := scanBuyer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan buyer row", err)
		}
		buyers = append(buyers, mapping.ToDomainBuyer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating buyer rows", err)
	}
	return buyers, nil
}

func scanBuyer(row pgx.Row) (models.Buyer, error) {
	var m models.Buyer
	err := row.Scan(
		&m.BuyerID,
		&m.Name,
		&m.NTN,
		&m.CNIC,
		&m.STRN,
		&m.Address,
		&m.Province,
		&m.RegistrationType,
		&m.Phone,
		&m.Email,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
