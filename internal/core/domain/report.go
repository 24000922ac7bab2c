package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportStatus is the lifecycle state of a report snapshot.
type ReportStatus string

const (
	ReportDraft    ReportStatus = "DRAFT"
	ReportSent     ReportStatus = "SENT"
	ReportApproved ReportStatus = "APPROVED"
)

// ReportRecipients is the fixed distribution list of oversight roles a
// report snapshot is addressed to.
var ReportRecipients = []string{"Directeur", "Superviseur"}

// ReportData is the frozen metrics payload captured at snapshot time.
// It is a copy, not a reference: later ledger mutations must not alter it.
type ReportData struct {
	TotalIncome   decimal.Decimal   `json:"totalIncome"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	NetProfit     decimal.Decimal   `json:"netProfit"`
	Entries       []AccountingEntry `json:"entries"`
}

// ReportSnapshot is an immutable, point-in-time copy of computed metrics
// created for distribution to oversight roles.
type ReportSnapshot struct {
	ReportID   string       `json:"reportID"`
	Title      string       `json:"title"`
	Period     PeriodToken  `json:"period"`
	Status     ReportStatus `json:"status"`
	Recipients []string     `json:"recipients"`
	Data       ReportData   `json:"data"`
	CreatedAt  time.Time    `json:"createdAt"`
	CreatedBy  string       `json:"createdBy"`
}

// Send transitions a draft report to Sent.
func (r *ReportSnapshot) Send() error {
	if r.Status != ReportDraft {
		return fmt.Errorf("report %s cannot be sent from status %s", r.ReportID, r.Status)
	}
	r.Status = ReportSent
	return nil
}

// Approve transitions a sent report to the terminal Approved state.
func (r *ReportSnapshot) Approve() error {
	if r.Status != ReportSent {
		return fmt.Errorf("report %s cannot be approved from status %s", r.ReportID, r.Status)
	}
	r.Status = ReportApproved
	return nil
}

// Notification is the event payload handed to the notification sink when a
// report snapshot is created. Fire and forget, no acknowledgment contract.
type Notification struct {
	Type      string    `json:"type"` // always "accounting_report"
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
	ReportID  string    `json:"reportId"`
}
