package services

import (
	"context"
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	"github.com/kemgoum/gescom_backend/internal/dto"
)

// ImportSvcFacade defines the reconciliation import flow: externally
// authored tabular rows are parsed into staged candidate entries, which the
// caller inspects and then confirms into the ledger in one atomic batch.
type ImportSvcFacade interface {
	// PreviewImport parses the rows into staged candidates. Rows failing
	// the acceptance predicate are returned with a reason instead of being
	// silently discarded. Nothing is written to the ledger.
	PreviewImport(ctx context.Context, rows []domain.Row, importedAt time.Time, importerUserID string) (candidates []domain.AccountingEntry, rejected []domain.RejectedRow, err error)

	// ConfirmImport appends the confirmed candidates to the ledger as a
	// single all-or-nothing batch and returns the number of entries
	// written.
	ConfirmImport(ctx context.Context, candidates []dto.CandidateEntry, importerUserID string) (int, error)
}
