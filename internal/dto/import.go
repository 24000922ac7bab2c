package dto

import (
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ImportPreviewRequest carries the raw spreadsheet rows to reconcile.
type ImportPreviewRequest struct {
	Rows []domain.Row `json:"rows" binding:"required"`
}

// CandidateEntry is a staged ledger entry produced by import preview. The
// caller may inspect or discard candidates before confirming the batch.
type CandidateEntry struct {
	Kind        domain.EntryKind `json:"kind"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Reference   string           `json:"reference"`
	Date        time.Time        `json:"date"`
	Notes       string           `json:"notes"`
}

// ImportPreviewResponse reports the staged candidates plus every dropped
// row with its reason, so lossy input stays visible to the operator.
type ImportPreviewResponse struct {
	Candidates    []CandidateEntry     `json:"candidates"`
	Rejected      []domain.RejectedRow `json:"rejected"`
	AcceptedCount int                  `json:"acceptedCount"`
	RejectedCount int                  `json:"rejectedCount"`
}

// ImportConfirmRequest carries the inspected candidates back for the
// confirmed atomic merge into the ledger.
type ImportConfirmRequest struct {
	Candidates []CandidateEntry `json:"candidates" binding:"required,min=1"`
}

// ToCandidateEntry maps a staged domain entry to its transport form.
func ToCandidateEntry(e domain.AccountingEntry) CandidateEntry {
	return CandidateEntry{
		Kind:        e.Kind,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Reference:   e.Reference,
		Date:        e.Date,
		Notes:       e.Notes,
	}
}

// ToCandidateEntries maps a slice of staged domain entries.
func ToCandidateEntries(entries []domain.AccountingEntry) []CandidateEntry {
	out := make([]CandidateEntry, len(entries))
	for i, e := range entries {
		out[i] = ToCandidateEntry(e)
	}
	return out
}
