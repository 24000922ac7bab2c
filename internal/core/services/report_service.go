package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
)

// NotificationTypeReport is the event type emitted when a report snapshot
// is created.
const NotificationTypeReport = "accounting_report"

// reportService implements the report snapshot lifecycle.
type reportService struct {
	BaseService
	reportRepo portsrepo.ReportRepositoryFacade
	notifier   portssvc.NotificationSink
}

// NewReportService creates a new report lifecycle service.
func NewReportService(reportRepo portsrepo.ReportRepositoryFacade, notifier portssvc.NotificationSink) portssvc.ReportSvcFacade {
	return &reportService{
		reportRepo: reportRepo,
		notifier:   notifier,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// CreateReport freezes the bundle into an immutable snapshot. The payload
// is a copy, not a reference: later ledger mutations must not alter it.
// The snapshot is persisted first; the notification is fire-and-forget and
// a sink failure is logged, never returned.
func (s *reportService) CreateReport(ctx context.Context, title string, period domain.PeriodToken, bundle domain.MetricsBundle, authorUserID string) (*domain.ReportSnapshot, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: report title is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()

	entries := make([]domain.AccountingEntry, len(bundle.PeriodEntries))
	copy(entries, bundle.PeriodEntries)

	recipients := make([]string, len(domain.ReportRecipients))
	copy(recipients, domain.ReportRecipients)

	snapshot := domain.ReportSnapshot{
		ReportID:   uuid.NewString(),
		Title:      title,
		Period:     period,
		Status:     domain.ReportSent,
		Recipients: recipients,
		Data: domain.ReportData{
			TotalIncome:   bundle.TotalIncome,
			TotalExpenses: bundle.TotalExpenses,
			NetProfit:     bundle.NetProfit,
			Entries:       entries,
		},
		CreatedAt: now,
		CreatedBy: authorUserID,
	}

	if err := s.reportRepo.SaveReport(ctx, snapshot); err != nil {
		s.LogError(ctx, err, "Failed to persist report snapshot", slog.String("title", title))
		return nil, fmt.Errorf("failed to persist report snapshot: %w", err)
	}

	notification := domain.Notification{
		Type:      NotificationTypeReport,
		Title:     title,
		Message:   fmt.Sprintf("Rapport %q disponible: résultat net %s", title, bundle.NetProfit.StringFixed(2)),
		CreatedAt: now,
		Read:      false,
		ReportID:  snapshot.ReportID,
	}
	if err := s.notifier.Notify(ctx, notification); err != nil {
		// Fire and forget: distribution failure must not undo the snapshot.
		s.LogError(ctx, err, "Failed to emit report notification", slog.String("report_id", snapshot.ReportID))
	}

	s.LogInfo(ctx, "Report snapshot created",
		slog.String("report_id", snapshot.ReportID),
		slog.String("period", string(period)),
		slog.Int("entry_count", len(entries)))
	return &snapshot, nil
}

// GetReportByID retrieves a single report snapshot.
func (s *reportService) GetReportByID(ctx context.Context, reportID string) (*domain.ReportSnapshot, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to find report %s: %w", reportID, err)
	}
	return report, nil
}

// ListReports returns all stored snapshots, most recent first.
func (s *reportService) ListReports(ctx context.Context) ([]domain.ReportSnapshot, error) {
	reports, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list report snapshots")
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
