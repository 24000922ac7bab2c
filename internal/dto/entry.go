package dto

import (
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the expected JSON body for creating an entry.
// Category is free text: the recommended category sets are advisory, not
// enforced.
type CreateEntryRequest struct {
	Kind        domain.EntryKind `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Category    string           `json:"category" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Reference   string           `json:"reference"` // defaulted to REF-<timestamp> when omitted
	Notes       string           `json:"notes"`
}

// UpdateEntryRequest defines the JSON body for patching an entry. Nil
// fields are left unchanged. Date, kind and status are not user editable
// through this path.
type UpdateEntryRequest struct {
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Reference   *string          `json:"reference"`
	Notes       *string          `json:"notes"`
}

// EntryResponse defines the JSON representation of an accounting entry.
type EntryResponse struct {
	EntryID     string           `json:"entryID"`
	Date        time.Time        `json:"date"`
	Kind        domain.EntryKind `json:"kind"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Reference   string           `json:"reference"`
	Status      domain.EntryStatus `json:"status"`
	CreatedBy   string           `json:"createdBy"`
	Notes       string           `json:"notes,omitempty"`
}

// ToEntryResponse maps a domain entry to its response representation.
func ToEntryResponse(e domain.AccountingEntry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		Date:        e.Date,
		Kind:        e.Kind,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Reference:   e.Reference,
		Status:      e.Status,
		CreatedBy:   e.CreatedBy,
		Notes:       e.Notes,
	}
}

// ToEntryResponses maps a slice of domain entries.
func ToEntryResponses(entries []domain.AccountingEntry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToEntryResponse(e)
	}
	return out
}
