package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/dto"
)

// Marker note recorded on every entry reconciled from a spreadsheet.
const importMarkerNote = "Importé depuis un tableur"

// The localized token whose presence in the Type field classifies a row as
// income. Matching is case-insensitive substring.
const incomeTypeToken = "recette"

// Rejection reasons surfaced to the operator for dropped rows.
const (
	rejectMissingType    = "champ Type manquant"
	rejectZeroAmount     = "montant nul ou non numérique"
	rejectNegativeAmount = "montant négatif"
)

// importService implements the reconciliation import flow.
type importService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewImportService creates a new reconciliation import service.
func NewImportService(entryRepo portsrepo.EntryRepositoryFacade) portssvc.ImportSvcFacade {
	return &importService{entryRepo: entryRepo}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// PreviewImport parses loosely typed spreadsheet rows into staged candidate
// entries. The acceptance predicate is unchanged from the legacy behavior
// (non-empty Type, non-zero numeric amount) but rejected rows are returned
// with a reason instead of being silently discarded. Nothing is written.
func (s *importService) PreviewImport(ctx context.Context, rows []domain.Row, importedAt time.Time, importerUserID string) ([]domain.AccountingEntry, []domain.RejectedRow, error) {
	candidates := make([]domain.AccountingEntry, 0, len(rows))
	rejected := make([]domain.RejectedRow, 0)

	for _, row := range rows {
		typeField := strings.TrimSpace(stringCell(row, domain.ColType))
		if typeField == "" {
			rejected = append(rejected, domain.RejectedRow{Row: row, Reason: rejectMissingType})
			continue
		}

		amount := coerceAmount(row[domain.ColAmount])
		if amount.IsZero() {
			rejected = append(rejected, domain.RejectedRow{Row: row, Reason: rejectZeroAmount})
			continue
		}
		if amount.IsNegative() {
			rejected = append(rejected, domain.RejectedRow{Row: row, Reason: rejectNegativeAmount})
			continue
		}

		kind := domain.Expense
		if strings.Contains(strings.ToLower(typeField), incomeTypeToken) {
			kind = domain.Income
		}

		category := strings.TrimSpace(stringCell(row, domain.ColCategory))
		if category == "" {
			category = "Other"
		}

		description := strings.TrimSpace(stringCell(row, domain.ColDescription))
		if description == "" {
			description = typeField
		}

		reference := strings.TrimSpace(stringCell(row, domain.ColReference))
		if reference == "" {
			reference = fmt.Sprintf("IMP-%d", importedAt.UnixMilli())
		}

		date, ok := coerceDate(row[domain.ColDate])
		if !ok {
			date = importedAt
		}

		notes := strings.TrimSpace(stringCell(row, domain.ColNotes))
		if notes == "" {
			notes = importMarkerNote
		} else {
			notes = notes + " | " + importMarkerNote
		}

		candidates = append(candidates, domain.AccountingEntry{
			EntryID:     uuid.NewString(),
			Date:        date,
			Kind:        kind,
			Category:    category,
			Description: description,
			Amount:      amount,
			Reference:   reference,
			Status:      domain.StatusPending,
			CreatedBy:   importerUserID,
			Notes:       notes,
		})
	}

	s.LogInfo(ctx, "Import preview parsed",
		slog.Int("rows", len(rows)),
		slog.Int("accepted", len(candidates)),
		slog.Int("rejected", len(rejected)))
	return candidates, rejected, nil
}

// ConfirmImport appends the confirmed candidates to the ledger in a single
// all-or-nothing batch. Candidate IDs are regenerated on confirmation so a
// replayed preview cannot collide with already-merged entries.
func (s *importService) ConfirmImport(ctx context.Context, candidates []dto.CandidateEntry, importerUserID string) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: no candidates to confirm", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entries := make([]domain.AccountingEntry, len(candidates))
	for i, c := range candidates {
		if c.Amount.LessThanOrEqual(decimal.Zero) {
			return 0, fmt.Errorf("%w: candidate %d has non-positive amount", apperrors.ErrValidation, i)
		}
		if c.Kind != domain.Income && c.Kind != domain.Expense {
			return 0, fmt.Errorf("%w: candidate %d has unknown kind %q", apperrors.ErrValidation, i, c.Kind)
		}
		category := c.Category
		if category == "" {
			category = "Other"
		}
		description := c.Description
		if description == "" {
			return 0, fmt.Errorf("%w: candidate %d has empty description", apperrors.ErrValidation, i)
		}
		reference := c.Reference
		if reference == "" {
			reference = fmt.Sprintf("IMP-%d", now.UnixMilli())
		}
		date := c.Date
		if date.IsZero() {
			date = now
		}

		entries[i] = domain.AccountingEntry{
			EntryID:     uuid.NewString(),
			Date:        date,
			Kind:        c.Kind,
			Category:    category,
			Description: description,
			Amount:      c.Amount,
			Reference:   reference,
			Status:      domain.StatusPending,
			CreatedBy:   importerUserID,
			Notes:       c.Notes,
		}
	}

	if err := s.entryRepo.AppendEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to merge import batch", slog.Int("batch_size", len(entries)))
		return 0, fmt.Errorf("failed to merge import batch: %w", err)
	}

	s.LogInfo(ctx, "Import batch merged into ledger", slog.Int("batch_size", len(entries)))
	return len(entries), nil
}

// stringCell reads a row cell as a string, tolerating absent values and
// non-string scalars.
func stringCell(row domain.Row, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// coerceAmount converts a loosely typed cell to a decimal amount. Anything
// non-numeric coerces to zero, which the acceptance predicate then drops.
// A decimal comma is normalized to a dot before parsing.
func coerceAmount(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		normalized := strings.ReplaceAll(strings.TrimSpace(n), ",", ".")
		d, err := decimal.NewFromString(normalized)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Accepted date layouts for imported rows, tried in order.
var importDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
}

// coerceDate converts a loosely typed cell to a date. The second return
// value is false when the cell is absent or unparseable.
func coerceDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		trimmed := strings.TrimSpace(d)
		if trimmed == "" {
			return time.Time{}, false
		}
		for _, layout := range importDateLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
