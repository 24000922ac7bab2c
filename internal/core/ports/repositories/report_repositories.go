package repositories

import (
	"context"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
)

// ReportRepositoryFacade defines persistence operations for the report
// snapshot collection. Snapshots are append-only: the data payload of a
// stored report is never rewritten.
type ReportRepositoryFacade interface {
	// SaveReport durably appends a report snapshot.
	SaveReport(ctx context.Context, report domain.ReportSnapshot) error

	// FindReportByID returns the snapshot or apperrors.ErrNotFound.
	FindReportByID(ctx context.Context, reportID string) (*domain.ReportSnapshot, error)

	// ListReports returns all stored snapshots, most recent first.
	ListReports(ctx context.Context) ([]domain.ReportSnapshot, error)
}
