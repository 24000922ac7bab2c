package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
)

// EntryRepository is an in-memory entry store guarded by a RWMutex. It
// backs the test suites and small single-process deployments.
type EntryRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.AccountingEntry
	order   []string
}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{entries: map[string]domain.AccountingEntry{}}
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

func (r *EntryRepository) AppendEntry(_ context.Context, entry domain.AccountingEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(entry)
	return nil
}

// AppendEntries adds the whole batch under one lock so readers never see a
// partially applied import.
func (r *EntryRepository) AppendEntries(_ context.Context, entries []domain.AccountingEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range entries {
		r.put(entry)
	}
	return nil
}

// UpdateEntry replaces the stored entry. Unknown IDs are a silent no-op.
func (r *EntryRepository) UpdateEntry(_ context.Context, entry domain.AccountingEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.EntryID]; !ok {
		return nil
	}
	r.entries[entry.EntryID] = entry
	return nil
}

// RemoveEntry deletes the entry. Unknown IDs are a silent no-op.
func (r *EntryRepository) RemoveEntry(_ context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entryID]; !ok {
		return nil
	}
	delete(r.entries, entryID)
	for i, id := range r.order {
		if id == entryID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *EntryRepository) FindEntryByID(_ context.Context, entryID string) (*domain.AccountingEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

// ListEntries returns a copy of the collection, most recent date first.
func (r *EntryRepository) ListEntries(_ context.Context) ([]domain.AccountingEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]domain.AccountingEntry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, r.entries[id])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (r *EntryRepository) put(entry domain.AccountingEntry) {
	if _, ok := r.entries[entry.EntryID]; !ok {
		r.order = append(r.order, entry.EntryID)
	}
	r.entries[entry.EntryID] = entry
}

// ReportRepository is the in-memory counterpart for report snapshots.
type ReportRepository struct {
	mu      sync.RWMutex
	reports []domain.ReportSnapshot
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

var _ portsrepo.ReportRepositoryFacade = (*ReportRepository)(nil)

func (r *ReportRepository) SaveReport(_ context.Context, report domain.ReportSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
	return nil
}

func (r *ReportRepository) FindReportByID(_ context.Context, reportID string) (*domain.ReportSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.reports {
		if r.reports[i].ReportID == reportID {
			report := r.reports[i]
			return &report, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListReports returns the snapshots most recent first.
func (r *ReportRepository) ListReports(_ context.Context) ([]domain.ReportSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reports := make([]domain.ReportSnapshot, len(r.reports))
	copy(reports, r.reports)
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

// NewRepositoryProvider builds a fully in-memory repository set.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:  NewEntryRepository(),
		ReportRepo: NewReportRepository(),
	}
}
