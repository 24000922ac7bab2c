package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
)

// PgxReportRepository persists report snapshots in PostgreSQL. The frozen
// metrics payload is stored as a JSONB document so it stays byte-stable
// regardless of later ledger mutations.
type PgxReportRepository struct {
	BaseRepository
}

func newPgxReportRepository(db *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

// SaveReport durably appends a report snapshot.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.ReportSnapshot) error {
	payload, err := json.Marshal(report.Data)
	if err != nil {
		return fmt.Errorf("failed to encode report payload: %w", err)
	}

	query := `
		INSERT INTO reports (report_id, title, period, status, recipients, data, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.Pool.Exec(ctx, query,
		report.ReportID,
		report.Title,
		string(report.Period),
		string(report.Status),
		report.Recipients,
		payload,
		report.CreatedAt,
		report.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", report.ReportID, err)
	}
	return nil
}

// FindReportByID returns the snapshot or apperrors.ErrNotFound.
func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.ReportSnapshot, error) {
	query := `
		SELECT report_id, title, period, status, recipients, data, created_at, created_by
		FROM reports
		WHERE report_id = $1;
	`
	report, err := scanReport(r.Pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report by ID %s: %w", reportID, err)
	}
	return report, nil
}

// ListReports returns all stored snapshots, most recent first.
func (r *PgxReportRepository) ListReports(ctx context.Context) ([]domain.ReportSnapshot, error) {
	query := `
		SELECT report_id, title, period, status, recipients, data, created_at, created_by
		FROM reports
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.ReportSnapshot{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return reports, nil
}

func scanReport(row pgx.Row) (*domain.ReportSnapshot, error) {
	var report domain.ReportSnapshot
	var period, status string
	var payload []byte
	if err := row.Scan(
		&report.ReportID,
		&report.Title,
		&period,
		&status,
		&report.Recipients,
		&payload,
		&report.CreatedAt,
		&report.CreatedBy,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &report.Data); err != nil {
		return nil, fmt.Errorf("failed to decode report payload: %w", err)
	}
	report.Period = domain.PeriodToken(period)
	report.Status = domain.ReportStatus(status)
	return &report, nil
}
