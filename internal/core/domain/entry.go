package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind indicates whether an accounting entry records money coming in or going out.
type EntryKind string

const (
	Income  EntryKind = "INCOME"
	Expense EntryKind = "EXPENSE"
)

// Label returns the localized display value for the kind, as used in the
// tabular import/export boundary.
func (k EntryKind) Label() string {
	if k == Income {
		return "Recette"
	}
	return "Dépense"
}

// EntryStatus is the lifecycle state of an accounting entry.
type EntryStatus string

const (
	StatusPending   EntryStatus = "PENDING"
	StatusValidated EntryStatus = "VALIDATED"
	StatusRejected  EntryStatus = "REJECTED"
)

// Label returns the localized display value for the status.
func (s EntryStatus) Label() string {
	switch s {
	case StatusValidated:
		return "Validé"
	case StatusRejected:
		return "Rejeté"
	default:
		return "En attente"
	}
}

// Recommended category sets. Advisory only: arbitrary category strings are
// accepted by entry creation.
var (
	IncomeCategories = []string{
		"ProductSales", "ServiceSales", "MiscRevenue", "Refunds", "Subsidies",
	}
	ExpenseCategories = []string{
		"Purchases", "Payroll", "Rent", "Utilities", "Travel", "Supplies",
		"Marketing", "Maintenance", "Taxes", "Insurance", "BankFees", "Other",
	}
)

// CategoryProductSales is the bucket that point-of-sale income is always
// attributed to in category breakdowns.
const CategoryProductSales = "ProductSales"

// AccountingEntry is a single manually recorded income or expense record.
type AccountingEntry struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"` // recording instant, not user editable
	Kind        EntryKind       `json:"kind"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // strictly positive
	Reference   string          `json:"reference"`
	Status      EntryStatus     `json:"status"`
	CreatedBy   string          `json:"createdBy"`
	Notes       string          `json:"notes"`
}

// CountsTowardTotals reports whether the entry contributes to computed
// metrics. A rejected entry is excluded from every downstream total
// regardless of kind.
func (e AccountingEntry) CountsTowardTotals() bool {
	return e.Status != StatusRejected
}

// Validate transitions the entry from Pending to Validated. The transition
// is one way: there is no path back to Pending.
func (e *AccountingEntry) Validate() error {
	if e.Status != StatusPending {
		return fmt.Errorf("entry %s cannot be validated from status %s", e.EntryID, e.Status)
	}
	e.Status = StatusValidated
	return nil
}

// Reject transitions the entry to the terminal Rejected state. Only pending
// entries may be rejected; a validated entry stays validated.
func (e *AccountingEntry) Reject() error {
	if e.Status != StatusPending {
		return fmt.Errorf("entry %s cannot be rejected from status %s", e.EntryID, e.Status)
	}
	e.Status = StatusRejected
	return nil
}
