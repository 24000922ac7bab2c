package repositories

import (
	"context"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
)

// EntryRepositoryFacade defines persistence operations for the ledger's
// accounting entry collection. Every write is immediately durable before
// returning: there is no async queue and no write-behind.
type EntryRepositoryFacade interface {
	// AppendEntry durably adds a single entry.
	AppendEntry(ctx context.Context, entry domain.AccountingEntry) error

	// AppendEntries durably adds a batch of entries as a single atomic
	// multi-append: either every entry is persisted or none is.
	AppendEntries(ctx context.Context, entries []domain.AccountingEntry) error

	// UpdateEntry replaces the stored entry with the same ID. Updating an
	// unknown ID is a silent no-op, matching the store contract.
	UpdateEntry(ctx context.Context, entry domain.AccountingEntry) error

	// RemoveEntry hard-deletes the entry with the given ID. Removing an
	// unknown ID is a silent no-op.
	RemoveEntry(ctx context.Context, entryID string) error

	// FindEntryByID returns the entry or apperrors.ErrNotFound.
	FindEntryByID(ctx context.Context, entryID string) (*domain.AccountingEntry, error)

	// ListEntries returns the full current entry collection.
	ListEntries(ctx context.Context) ([]domain.AccountingEntry, error)
}
