package services

import (
	"github.com/shopspring/decimal"

	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, salesFeed portssvc.SalesFeed, inventoryFeed portssvc.InventoryFeed, notifier portssvc.NotificationSink, taxRate decimal.Decimal) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Entry = NewEntryService(repos.EntryRepo)
	container.Metrics = NewMetricsService(repos.EntryRepo, salesFeed, inventoryFeed, taxRate)
	container.Import = NewImportService(repos.EntryRepo)
	container.Export = NewExportService(container.Metrics)
	container.Report = NewReportService(repos.ReportRepo, notifier)

	return container
}
