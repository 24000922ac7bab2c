package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
)

// PgxEntryRepository persists accounting entries in PostgreSQL.
type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const insertEntryQuery = `
	INSERT INTO entries (entry_id, entry_date, kind, category, description, amount, reference, status, created_by, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

// AppendEntry durably adds a single entry.
func (r *PgxEntryRepository) AppendEntry(ctx context.Context, entry domain.AccountingEntry) error {
	_, err := r.Pool.Exec(ctx, insertEntryQuery,
		entry.EntryID,
		entry.Date,
		string(entry.Kind),
		entry.Category,
		entry.Description,
		entry.Amount,
		entry.Reference,
		string(entry.Status),
		entry.CreatedBy,
		entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to append entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// AppendEntries adds a batch of entries in a single transaction: either
// every entry is persisted or none is.
func (r *PgxEntryRepository) AppendEntries(ctx context.Context, entries []domain.AccountingEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	for _, entry := range entries {
		if _, err := tx.Exec(ctx, insertEntryQuery,
			entry.EntryID,
			entry.Date,
			string(entry.Kind),
			entry.Category,
			entry.Description,
			entry.Amount,
			entry.Reference,
			string(entry.Status),
			entry.CreatedBy,
			entry.Notes,
		); err != nil {
			return fmt.Errorf("failed to append entry %s in batch: %w", entry.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateEntry replaces the stored entry with the same ID. An unknown ID is
// a silent no-op per the store contract.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.AccountingEntry) error {
	query := `
		UPDATE entries
		SET entry_date = $2, kind = $3, category = $4, description = $5,
		    amount = $6, reference = $7, status = $8, created_by = $9, notes = $10
		WHERE entry_id = $1;
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.Date,
		string(entry.Kind),
		entry.Category,
		entry.Description,
		entry.Amount,
		entry.Reference,
		string(entry.Status),
		entry.CreatedBy,
		entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// RemoveEntry hard-deletes the entry. An unknown ID is a silent no-op.
func (r *PgxEntryRepository) RemoveEntry(ctx context.Context, entryID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to remove entry %s: %w", entryID, err)
	}
	return nil
}

// FindEntryByID returns the entry or apperrors.ErrNotFound.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	query := `
		SELECT entry_id, entry_date, kind, category, description, amount, reference, status, created_by, notes
		FROM entries
		WHERE entry_id = $1;
	`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries returns the full current entry collection.
func (r *PgxEntryRepository) ListEntries(ctx context.Context) ([]domain.AccountingEntry, error) {
	query := `
		SELECT entry_id, entry_date, kind, category, description, amount, reference, status, created_by, notes
		FROM entries
		ORDER BY entry_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AccountingEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entry rows: %w", err)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.AccountingEntry, error) {
	var entry domain.AccountingEntry
	var kind, status string
	if err := row.Scan(
		&entry.EntryID,
		&entry.Date,
		&kind,
		&entry.Category,
		&entry.Description,
		&entry.Amount,
		&entry.Reference,
		&status,
		&entry.CreatedBy,
		&entry.Notes,
	); err != nil {
		return nil, err
	}
	entry.Kind = domain.EntryKind(kind)
	entry.Status = domain.EntryStatus(status)
	return &entry, nil
}
