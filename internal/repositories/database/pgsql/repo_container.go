package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
)

// NewRepositoryProvider builds the repository set backed by PostgreSQL.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:  newPgxEntryRepository(dbPool),
		ReportRepo: newPgxReportRepository(dbPool),
	}
}

// NewCollaborators builds the external collaborator adapters (sales feed,
// inventory valuation, notification sink) backed by the shared database.
func NewCollaborators(dbPool *pgxpool.Pool) (portssvc.SalesFeed, portssvc.InventoryFeed, portssvc.NotificationSink) {
	return newPgxSalesFeed(dbPool), newPgxInventoryFeed(dbPool), newPgxNotificationSink(dbPool)
}
