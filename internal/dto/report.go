package dto

import (
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReportRequest defines the JSON body for snapshotting the current
// period's metrics into a distributable report.
type CreateReportRequest struct {
	Title  string `json:"title" binding:"required"`
	Period string `json:"period"` // week|month|quarter|year, defaults to month
}

// ReportDataResponse is the frozen metrics payload of a snapshot.
type ReportDataResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	Entries       []EntryResponse `json:"entries"`
}

// ReportResponse defines the JSON representation of a report snapshot.
type ReportResponse struct {
	ReportID   string              `json:"reportID"`
	Title      string              `json:"title"`
	Period     domain.PeriodToken  `json:"period"`
	Status     domain.ReportStatus `json:"status"`
	Recipients []string            `json:"recipients"`
	Data       ReportDataResponse  `json:"data"`
	CreatedAt  time.Time           `json:"createdAt"`
	CreatedBy  string              `json:"createdBy"`
}

// ToReportResponse maps a domain snapshot to its response representation.
func ToReportResponse(r domain.ReportSnapshot) ReportResponse {
	return ReportResponse{
		ReportID:   r.ReportID,
		Title:      r.Title,
		Period:     r.Period,
		Status:     r.Status,
		Recipients: r.Recipients,
		Data: ReportDataResponse{
			TotalIncome:   r.Data.TotalIncome,
			TotalExpenses: r.Data.TotalExpenses,
			NetProfit:     r.Data.NetProfit,
			Entries:       ToEntryResponses(r.Data.Entries),
		},
		CreatedAt: r.CreatedAt,
		CreatedBy: r.CreatedBy,
	}
}

// ToReportResponses maps a slice of domain snapshots.
func ToReportResponses(reports []domain.ReportSnapshot) []ReportResponse {
	out := make([]ReportResponse, len(reports))
	for i, r := range reports {
		out[i] = ToReportResponse(r)
	}
	return out
}
