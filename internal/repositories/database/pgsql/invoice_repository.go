package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
	"github.com/SscSPs/sales_tax_invoicing/internal/models"
	"github.com/SscSPs/sales_tax_invoicing/internal/utils/mapping"
	"github.com/SscSPs/sales_tax_invoicing/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `invoice_id, entity_id, buyer_id, invoice_number, invoice_date, document_type,
	salesman, reference_number, total_invoice_value,
	created_at, created_by, last_updated_at, last_updated_by`

const invoiceItemColumns = `item_id, invoice_id, position, hs_code, description, sale_type, uom,
	quantity, unit_price, rate, sales_value, sales_tax, discount, other_discount, trade_discount,
	sales_tax_withheld, extra_tax, further_tax, federal_excise_duty, t236g, t236h, fixed_value,
	sro_schedule_no, sro_item_serial_no, total_item_value`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices and their items.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice inserts the invoice header and all its items in one DB transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	m := mapping.ToModelInvoice(invoice)
	headerQuery := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err = tx.Exec(ctx, headerQuery,
		m.InvoiceID,
		m.EntityID,
		m.BuyerID,
		m.InvoiceNumber,
		m.InvoiceDate,
		m.DocumentType,
		m.Salesman,
		m.ReferenceNumber,
		m.TotalInvoiceValue,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "invoice number "+m.InvoiceNumber+" already exists for this entity", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `INSERT INTO invoice_items (` + invoiceItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);`
	for _, it := range mapping.ToModelInvoiceItems(invoice) {
		batch.Queue(itemQuery,
			it.ItemID,
			it.InvoiceID,
			it.Position,
			it.HSCode,
			it.Description,
			it.SaleType,
			it.UOM,
			it.Quantity,
			it.UnitPrice,
			it.Rate,
			it.SalesValue,
			it.SalesTax,
			it.Discount,
			it.OtherDiscount,
			it.TradeDiscount,
			it.SalesTaxWithheld,
			it.ExtraTax,
			it.FurtherTax,
			it.FederalExciseDuty,
			it.T236G,
			it.T236H,
			it.FixedValue,
			it.SROScheduleNo,
			it.SROItemSerialNo,
			it.TotalItemValue,
		)
	}

	// Close surfaces the first failed insert of the batch.
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "duplicate item id in invoice "+m.InvoiceID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert items for invoice "+m.InvoiceID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteInvoice removes an invoice; its items go with it through ON DELETE CASCADE.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindInvoiceByID retrieves an invoice with its items in position order.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	header, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}

	items, err := r.findItems(ctx, []string{invoiceID})
	if err != nil {
		return nil, err
	}

	inv := mapping.ToDomainInvoice(header, items[invoiceID])
	return &inv, nil
}

// FindItemsByInvoiceIDs retrieves the items of several invoices, grouped by invoice ID.
func (r *PgxInvoiceRepository) FindItemsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]domain.LineItem, error) {
	grouped, err := r.findItems(ctx, invoiceIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]domain.LineItem, len(grouped))
	for id, items := range grouped {
		out[id] = mapping.ToDomainLineItems(items)
	}
	return out, nil
}

func (r *PgxInvoiceRepository) findItems(ctx context.Context, invoiceIDs []string) (map[string][]models.InvoiceItem, error) {
	grouped := make(map[string][]models.InvoiceItem, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return grouped, nil
	}

	query := `SELECT ` + invoiceItemColumns + `
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, position;`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.InvoiceItem
		err := rows.Scan(
			&it.ItemID,
			&it.InvoiceID,
			&it.Position,
			&it.HSCode,
			&it.Description,
			&it.SaleType,
			&it.UOM,
			&it.Quantity,
			&it.UnitPrice,
			&it.Rate,
			&it.SalesValue,
			&it.SalesTax,
			&it.Discount,
			&it.OtherDiscount,
			&it.TradeDiscount,
			&it.SalesTaxWithheld,
			&it.ExtraTax,
			&it.FurtherTax,
			&it.FederalExciseDuty,
			&it.T236G,
			&it.T236H,
			&it.FixedValue,
			&it.SROScheduleNo,
			&it.SROItemSerialNo,
			&it.TotalItemValue,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		grouped[it.InvoiceID] = append(grouped[it.InvoiceID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice item rows", err)
	}
	return grouped, nil
}

// ListInvoicesByUser retrieves a page of invoice headers (without items) created by userID.
func (r *PgxInvoiceRepository) ListInvoicesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether there is a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE created_by = $1`
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += ` AND (invoice_date, created_at, invoice_id) < ($2, $3, $4)`
		args = append(args, cursor.InvoiceDate, cursor.CreatedAt, cursor.InvoiceID)
	}
	query += ` ORDER BY invoice_date DESC, created_at DESC, invoice_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices for user "+userID, err)
	}
	defer rows.Close()

	headers := make([]models.Invoice, 0, fetchLimit)
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan invoice row for user "+userID, err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating invoice rows for user "+userID, err)
	}

	var nextTokenVal *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			InvoiceDate: last.InvoiceDate,
			CreatedAt:   last.CreatedAt,
			InvoiceID:   last.InvoiceID,
		})
		nextTokenVal = &token
	}

	invoices := make([]domain.Invoice, len(headers))
	for i, h := range headers {
		invoices[i] = mapping.ToDomainInvoice(h, nil)
	}
	return invoices, nextTokenVal, nil
}

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.EntityID,
		&m.BuyerID,
		&m.InvoiceNumber,
		&m.InvoiceDate,
		&m.DocumentType,
		&m.Salesman,
		&m.ReferenceNumber,
		&m.TotalInvoiceValue,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
