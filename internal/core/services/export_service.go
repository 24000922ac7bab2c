package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
)

// exportService projects period metrics into the tabular boundary format.
type exportService struct {
	BaseService
	metricsSvc portssvc.MetricsSvcFacade
}

// NewExportService creates a new export service.
func NewExportService(metricsSvc portssvc.MetricsSvcFacade) portssvc.ExportSvcFacade {
	return &exportService{metricsSvc: metricsSvc}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// ExportPeriod computes the period's metrics and renders the export table.
func (s *exportService) ExportPeriod(ctx context.Context, period domain.PeriodToken, now time.Time) ([]domain.Row, error) {
	bundle, err := s.metricsSvc.ComputeMetrics(ctx, period, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute metrics for export: %w", err)
	}

	rows := ToTable(*bundle)
	s.LogInfo(ctx, "Period exported",
		slog.String("period", string(period)),
		slog.Int("rows", len(rows)))
	return rows, nil
}

// ToTable renders one row per period entry using the localized column
// labels, plus one synthetic trailing summary row carrying the net profit
// and a textual income/expense breakdown. Amounts stay plain numbers so
// the table round-trips through the reconciliation importer.
func ToTable(bundle domain.MetricsBundle) []domain.Row {
	rows := make([]domain.Row, 0, len(bundle.PeriodEntries)+1)

	for _, e := range bundle.PeriodEntries {
		rows = append(rows, domain.Row{
			domain.ColDate:        e.Date.Format("2006-01-02"),
			domain.ColType:        e.Kind.Label(),
			domain.ColCategory:    e.Category,
			domain.ColDescription: e.Description,
			domain.ColAmount:      e.Amount,
			domain.ColReference:   e.Reference,
			domain.ColStatus:      e.Status.Label(),
			domain.ColAuthor:      e.CreatedBy,
			domain.ColNotes:       e.Notes,
		})
	}

	rows = append(rows, domain.Row{
		domain.ColDate:        bundle.Interval.End.Format("2006-01-02"),
		domain.ColType:        "",
		domain.ColCategory:    "",
		domain.ColDescription: "Résultat net",
		domain.ColAmount:      bundle.NetProfit,
		domain.ColReference:   "",
		domain.ColStatus:      "",
		domain.ColAuthor:      "",
		domain.ColNotes:       fmt.Sprintf("Revenus: %s / Dépenses: %s", bundle.TotalIncome.String(), bundle.TotalExpenses.String()),
	})

	return rows
}
