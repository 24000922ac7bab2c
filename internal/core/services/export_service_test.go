package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/core/services"
)

// --- Test Suite Setup ---

type ExportServiceTestSuite struct {
	suite.Suite
	mockMetrics *MockMetricsService
	service     portssvc.ExportSvcFacade
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockMetrics = new(MockMetricsService)
	suite.service = services.NewExportService(suite.mockMetrics)
}

// --- Test Cases ---

func (suite *ExportServiceTestSuite) TestExportPeriod_DelegatesToMetrics() {
	ctx := context.Background()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	inPeriod := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	entries := []domain.AccountingEntry{
		entry("e1", inPeriod, domain.Income, "ServiceSales", "1000", domain.StatusValidated),
	}
	bundle := services.ComputeBundle(domain.PeriodMonth, now, entries, nil, decimal.Zero, testTaxRate)

	suite.mockMetrics.On("ComputeMetrics", ctx, domain.PeriodMonth, now).Return(&bundle, nil).Once()

	rows, err := suite.service.ExportPeriod(ctx, domain.PeriodMonth, now)

	suite.Require().NoError(err)
	suite.Len(rows, 2)
	suite.mockMetrics.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportPeriod_MetricsError() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.mockMetrics.On("ComputeMetrics", ctx, domain.PeriodWeek, now).Return(nil, assert.AnError).Once()

	rows, err := suite.service.ExportPeriod(ctx, domain.PeriodWeek, now)

	suite.Error(err)
	suite.Nil(rows)
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

// --- Pure projection tests ---

func TestToTable_RowShapeAndSummary(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	inPeriod := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	entries := []domain.AccountingEntry{
		entry("e1", inPeriod, domain.Income, "ServiceSales", "1500", domain.StatusValidated),
		entry("e2", inPeriod, domain.Expense, "Rent", "800", domain.StatusPending),
	}
	bundle := services.ComputeBundle(domain.PeriodMonth, now, entries, nil, decimal.Zero, testTaxRate)

	rows := services.ToTable(bundle)
	require := assert.New(t)
	require.Len(rows, 3)

	first := rows[0]
	require.Equal("2025-03-10", first[domain.ColDate])
	require.Equal("Recette", first[domain.ColType])
	require.Equal("ServiceSales", first[domain.ColCategory])
	require.Equal("Validé", first[domain.ColStatus])
	require.Equal("tester", first[domain.ColAuthor])

	// Amounts stay decimals, not formatted strings, so the table
	// round-trips through the importer.
	amountCell, ok := first[domain.ColAmount].(decimal.Decimal)
	require.True(ok)
	require.True(amountCell.Equal(decimal.NewFromInt(1500)))

	second := rows[1]
	require.Equal("Dépense", second[domain.ColType])
	require.Equal("En attente", second[domain.ColStatus])

	// The trailing summary row carries the net profit and no Type, so a
	// re-import drops it instead of double counting.
	summary := rows[2]
	require.Equal("", summary[domain.ColType])
	require.Equal("Résultat net", summary[domain.ColDescription])
	profitCell, ok := summary[domain.ColAmount].(decimal.Decimal)
	require.True(ok)
	require.True(profitCell.Equal(decimal.NewFromInt(700)))
	require.Contains(summary[domain.ColNotes], "Revenus: 1500")
	require.Contains(summary[domain.ColNotes], "Dépenses: 800")
}

func TestToTable_EmptyPeriodStillHasSummary(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	bundle := services.ComputeBundle(domain.PeriodMonth, now, nil, nil, decimal.Zero, testTaxRate)

	rows := services.ToTable(bundle)

	assert.Len(t, rows, 1)
	assert.Equal(t, "Résultat net", rows[0][domain.ColDescription])
}
