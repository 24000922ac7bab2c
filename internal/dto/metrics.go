package dto

import (
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MetricsResponse is the JSON projection of a computed metrics bundle.
type MetricsResponse struct {
	Period        domain.PeriodToken `json:"period"`
	PeriodStart   time.Time          `json:"periodStart"`
	PeriodEnd     time.Time          `json:"periodEnd"`
	EntryIncome   decimal.Decimal    `json:"entryIncome"`
	SalesIncome   decimal.Decimal    `json:"salesIncome"`
	TotalIncome   decimal.Decimal    `json:"totalIncome"`
	TotalExpenses decimal.Decimal    `json:"totalExpenses"`
	NetProfit     decimal.Decimal    `json:"netProfit"`
	ProfitMargin  decimal.Decimal    `json:"profitMargin"`

	PendingPayments decimal.Decimal `json:"pendingPayments"`
	StockValue      decimal.Decimal `json:"stockValue"`

	VATCollected  decimal.Decimal `json:"vatCollected"`
	VATDeductible decimal.Decimal `json:"vatDeductible"`
	VATToPay      decimal.Decimal `json:"vatToPay"`

	IncomeByCategory   map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`

	EntryCount     int             `json:"entryCount"`
	PendingEntries int             `json:"pendingEntries"`
	Entries        []EntryResponse `json:"entries"`
}

// ToMetricsResponse maps a domain metrics bundle to its response form.
func ToMetricsResponse(b domain.MetricsBundle) MetricsResponse {
	return MetricsResponse{
		Period:             b.Period,
		PeriodStart:        b.Interval.Start,
		PeriodEnd:          b.Interval.End,
		EntryIncome:        b.EntryIncome,
		SalesIncome:        b.SalesIncome,
		TotalIncome:        b.TotalIncome,
		TotalExpenses:      b.TotalExpenses,
		NetProfit:          b.NetProfit,
		ProfitMargin:       b.ProfitMargin,
		PendingPayments:    b.PendingPayments,
		StockValue:         b.StockValue,
		VATCollected:       b.VATCollected,
		VATDeductible:      b.VATDeductible,
		VATToPay:           b.VATToPay,
		IncomeByCategory:   b.IncomeByCategory,
		ExpensesByCategory: b.ExpensesByCategory,
		EntryCount:         b.EntryCount,
		PendingEntries:     b.PendingEntries,
		Entries:            ToEntryResponses(b.PeriodEntries),
	}
}
