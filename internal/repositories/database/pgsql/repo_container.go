package pgsql

import (
	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. Reports are archived
// outside the database, so the store is passed in.
func NewRepositoryProvider(dbPool *pgxpool.Pool, reportStore portsrepo.ReportStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		BuyerRepo:    newPgxBuyerRepository(dbPool),
		EntityRepo:   newPgxEntityRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
		ReportStore:  reportStore,
	}
}
