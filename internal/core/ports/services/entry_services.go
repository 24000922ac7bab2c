package services

import (
	"context"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	"github.com/kemgoum/gescom_backend/internal/dto"
)

// EntrySvcFacade defines operations on the manually recorded ledger.
type EntrySvcFacade interface {
	// CreateEntry records a new entry in Pending status. The entry date is
	// the creation instant and is not user supplied.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.AccountingEntry, error)

	// GetEntryByID returns the entry or apperrors.ErrNotFound.
	GetEntryByID(ctx context.Context, entryID string) (*domain.AccountingEntry, error)

	// ListEntries returns the full entry collection.
	ListEntries(ctx context.Context) ([]domain.AccountingEntry, error)

	// UpdateEntry patches an existing entry. Patching an unknown ID is a
	// silent no-op per the store contract; the returned entry is nil in
	// that case.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.AccountingEntry, error)

	// DeleteEntry hard-deletes the entry. Unknown IDs are a silent no-op.
	DeleteEntry(ctx context.Context, entryID string) error

	// ValidateEntry transitions a pending entry to Validated (one way).
	ValidateEntry(ctx context.Context, entryID string) (*domain.AccountingEntry, error)

	// RejectEntry transitions a pending entry to the terminal Rejected
	// state, removing it from all computed totals.
	RejectEntry(ctx context.Context, entryID string) (*domain.AccountingEntry, error)
}
