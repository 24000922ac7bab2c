package services

import (
	"context"
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
)

// ExportSvcFacade projects a period's entries and summary metrics into a
// tabular structure suitable for spreadsheet output. Numeric cells stay
// plain numbers so the exported table round-trips through the importer.
type ExportSvcFacade interface {
	ExportPeriod(ctx context.Context, period domain.PeriodToken, now time.Time) ([]domain.Row, error)
}
