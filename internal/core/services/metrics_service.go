package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portsrepo "github.com/kemgoum/gescom_backend/internal/core/ports/repositories"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
)

var oneHundred = decimal.NewFromInt(100)

// metricsService implements the accounting aggregation engine. It is
// stateless: every call re-reads the full ledger and sales feed and
// recomputes the bundle from source, so there is no cache to invalidate.
type metricsService struct {
	BaseService
	entryRepo     portsrepo.EntryRepositoryFacade
	salesFeed     portssvc.SalesFeed
	inventoryFeed portssvc.InventoryFeed
	taxRate       decimal.Decimal
}

// NewMetricsService creates a new metrics service. The flat VAT rate is an
// explicit configuration value, not a hidden global, so a different
// jurisdiction is a parameter change.
func NewMetricsService(entryRepo portsrepo.EntryRepositoryFacade, salesFeed portssvc.SalesFeed, inventoryFeed portssvc.InventoryFeed, taxRate decimal.Decimal) portssvc.MetricsSvcFacade {
	return &metricsService{
		entryRepo:     entryRepo,
		salesFeed:     salesFeed,
		inventoryFeed: inventoryFeed,
		taxRate:       taxRate,
	}
}

var _ portssvc.MetricsSvcFacade = (*metricsService)(nil)

// ComputeMetrics reads the current ledger and collaborator feeds and
// derives the metrics bundle for the requested period. Collaborator
// failures propagate to the caller; retries belong around the I/O boundary,
// not here.
func (s *metricsService) ComputeMetrics(ctx context.Context, period domain.PeriodToken, now time.Time) (*domain.MetricsBundle, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger entries for metrics")
		return nil, fmt.Errorf("failed to read ledger entries: %w", err)
	}

	sales, err := s.salesFeed.ListSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read sales feed for metrics")
		return nil, fmt.Errorf("failed to read sales feed: %w", err)
	}

	stockValue, err := s.inventoryFeed.StockValue(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read inventory valuation for metrics")
		return nil, fmt.Errorf("failed to read inventory valuation: %w", err)
	}

	bundle := ComputeBundle(period, now, entries, sales, stockValue, s.taxRate)

	s.LogInfo(ctx, "Metrics bundle computed",
		slog.String("period", string(period)),
		slog.Int("entry_count", bundle.EntryCount),
		slog.String("net_profit", bundle.NetProfit.String()))
	return &bundle, nil
}

// ComputeBundle is the pure aggregation at the heart of the engine: a
// function of (period, now, entries, sales, stock value, tax rate) with no
// I/O and no error conditions. Empty input degrades to zero-valued metrics.
func ComputeBundle(period domain.PeriodToken, now time.Time, entries []domain.AccountingEntry, sales []domain.SaleRecord, stockValue decimal.Decimal, taxRate decimal.Decimal) domain.MetricsBundle {
	interval := domain.ResolvePeriod(period, now)

	periodEntries := make([]domain.AccountingEntry, 0, len(entries))
	for _, e := range entries {
		if interval.Contains(e.Date) {
			periodEntries = append(periodEntries, e)
		}
	}

	entryIncome := decimal.Zero
	entryExpenses := decimal.Zero
	incomeByCategory := make(map[string]decimal.Decimal)
	expensesByCategory := make(map[string]decimal.Decimal)
	pendingEntries := 0

	for _, e := range periodEntries {
		if e.Status == domain.StatusPending {
			pendingEntries++
		}
		// A rejected entry is excluded from every total regardless of kind.
		if !e.CountsTowardTotals() {
			continue
		}
		if e.Kind == domain.Income {
			entryIncome = entryIncome.Add(e.Amount)
			incomeByCategory[e.Category] = incomeByCategory[e.Category].Add(e.Amount)
		} else {
			entryExpenses = entryExpenses.Add(e.Amount)
			expensesByCategory[e.Category] = expensesByCategory[e.Category].Add(e.Amount)
		}
	}

	salesIncome := decimal.Zero
	pendingPayments := decimal.Zero
	for _, sale := range sales {
		if !interval.Contains(sale.Date) {
			continue
		}
		if sale.Paid {
			salesIncome = salesIncome.Add(sale.Total)
		} else {
			pendingPayments = pendingPayments.Add(sale.Total)
		}
	}

	// Point-of-sale income is always attributed to the product-sales
	// bucket, additively, even when no ledger entry uses that category.
	incomeByCategory[domain.CategoryProductSales] = incomeByCategory[domain.CategoryProductSales].Add(salesIncome)

	vatCollected := salesIncome.Mul(taxRate)
	vatDeductible := entryExpenses.Mul(taxRate)
	vatToPay := vatCollected.Sub(vatDeductible) // negative means carry-forward credit

	totalIncome := entryIncome.Add(salesIncome)
	totalExpenses := entryExpenses
	netProfit := totalIncome.Sub(totalExpenses)

	profitMargin := decimal.Zero
	if totalIncome.IsPositive() {
		profitMargin = netProfit.Div(totalIncome).Mul(oneHundred)
	}

	return domain.MetricsBundle{
		Period:             period,
		Interval:           interval,
		EntryIncome:        entryIncome,
		SalesIncome:        salesIncome,
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetProfit:          netProfit,
		ProfitMargin:       profitMargin,
		PendingPayments:    pendingPayments,
		StockValue:         stockValue,
		VATCollected:       vatCollected,
		VATDeductible:      vatDeductible,
		VATToPay:           vatToPay,
		IncomeByCategory:   incomeByCategory,
		ExpensesByCategory: expensesByCategory,
		EntryCount:         len(periodEntries),
		PendingEntries:     pendingEntries,
		PeriodEntries:      periodEntries,
		ComputedAt:         now,
	}
}
