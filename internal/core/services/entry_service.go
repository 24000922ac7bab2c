package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/dto"
)

// entryService implements EntrySvcFacade on top of the ledger store.
type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewEntryService creates a new entry service.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryService{entryRepo: entryRepo}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// CreateEntry records a new entry. The entry date is the recording instant;
// status starts at Pending.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.AccountingEntry, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	reference := req.Reference
	if reference == "" {
		reference = fmt.Sprintf("REF-%d", now.UnixMilli())
	}

	entry := domain.AccountingEntry{
		EntryID:     uuid.NewString(),
		Date:        now,
		Kind:        req.Kind,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Reference:   reference,
		Status:      domain.StatusPending,
		CreatedBy:   creatorUserID,
		Notes:       req.Notes,
	}

	if err := s.entryRepo.AppendEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append accounting entry")
		return nil, fmt.Errorf("failed to append entry: %w", err)
	}

	s.LogInfo(ctx, "Accounting entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// GetEntryByID retrieves a single entry.
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries returns the full current entry collection.
func (s *entryService) ListEntries(ctx context.Context) ([]domain.AccountingEntry, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounting entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// UpdateEntry patches an existing entry. Patching an unknown ID is a silent
// no-op, matching the store's upsert contract; nil is returned in that case.
func (s *entryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.AccountingEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Update of unknown entry ignored", slog.String("entry_id", entryID))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, fmt.Errorf("%w: category must not be empty", apperrors.ErrValidation)
		}
		entry.Category = *req.Category
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
		}
		entry.Description = *req.Description
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update accounting entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}

	return entry, nil
}

// DeleteEntry hard-deletes the entry. Deleting an unknown ID is a no-op.
func (s *entryService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.RemoveEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to remove accounting entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to remove entry %s: %w", entryID, err)
	}
	s.LogInfo(ctx, "Accounting entry removed", slog.String("entry_id", entryID))
	return nil
}

// ValidateEntry transitions a pending entry to Validated.
func (s *entryService) ValidateEntry(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	return s.transitionEntry(ctx, entryID, func(e *domain.AccountingEntry) error { return e.Validate() })
}

// RejectEntry transitions a pending entry to the terminal Rejected state.
func (s *entryService) RejectEntry(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	return s.transitionEntry(ctx, entryID, func(e *domain.AccountingEntry) error { return e.Reject() })
}

func (s *entryService) transitionEntry(ctx context.Context, entryID string, transition func(*domain.AccountingEntry) error) (*domain.AccountingEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	if err := transition(entry); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to persist entry status transition", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Entry status changed",
		slog.String("entry_id", entryID),
		slog.String("status", string(entry.Status)))
	return entry, nil
}
