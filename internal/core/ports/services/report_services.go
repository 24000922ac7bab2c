package services

import (
	"context"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
)

// ReportSvcFacade manages the report snapshot lifecycle.
type ReportSvcFacade interface {
	// CreateReport freezes the bundle into an immutable snapshot with
	// status Sent and the fixed oversight distribution list, persists it,
	// and emits one notification event. An empty title is a validation
	// error: nothing is persisted and nothing is notified.
	CreateReport(ctx context.Context, title string, period domain.PeriodToken, bundle domain.MetricsBundle, authorUserID string) (*domain.ReportSnapshot, error)

	// GetReportByID returns the snapshot or apperrors.ErrNotFound.
	GetReportByID(ctx context.Context, reportID string) (*domain.ReportSnapshot, error)

	// ListReports returns all snapshots, most recent first.
	ListReports(ctx context.Context) ([]domain.ReportSnapshot, error)
}
