package pgsql

import (
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the postgres-backed repository set. The
// catalog stays in memory in every mode: it is fixture data regenerated
// at startup, not persistent state.
func NewRepositoryProvider(dbPool *pgxpool.Pool, catalog portsrepo.CatalogReader) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo:  ledgerRepo,
		CatalogRepo: catalog,
		UserRepo:    userRepo,
	}
}
