package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsBundle is the full set of financial metrics derived for one period.
// It is a pure function of (period, now, ledger entries, sales records,
// stock value, tax rate): recomputed on every call, never cached.
type MetricsBundle struct {
	Period   PeriodToken `json:"period"`
	Interval Interval    `json:"interval"`

	EntryIncome     decimal.Decimal `json:"entryIncome"`
	SalesIncome     decimal.Decimal `json:"salesIncome"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	NetProfit       decimal.Decimal `json:"netProfit"`
	ProfitMargin    decimal.Decimal `json:"profitMargin"` // percentage, 0 when totalIncome is 0
	PendingPayments decimal.Decimal `json:"pendingPayments"`
	StockValue      decimal.Decimal `json:"stockValue"` // collaborator snapshot, not period filtered

	VATCollected  decimal.Decimal `json:"vatCollected"`
	VATDeductible decimal.Decimal `json:"vatDeductible"`
	VATToPay      decimal.Decimal `json:"vatToPay"` // negative means carry-forward credit

	IncomeByCategory   map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`

	EntryCount     int `json:"entryCount"`
	PendingEntries int `json:"pendingEntries"`

	// PeriodEntries is the raw filtered entry set the bundle was computed
	// from. Consumers need it for export and report snapshots.
	PeriodEntries []AccountingEntry `json:"periodEntries"`

	ComputedAt time.Time `json:"computedAt"`
}
