package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/core/services"
	"github.com/kemgoum/gescom_backend/internal/dto"
)

// --- Test Suite Setup ---

type ImportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  portssvc.ImportSvcFacade
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.service = services.NewImportService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ImportServiceTestSuite) TestPreviewImport_AcceptanceAndClassification() {
	ctx := context.Background()
	importedAt := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	rows := []domain.Row{
		{domain.ColType: "", domain.ColAmount: 500.0},
		{domain.ColType: "Dépense", domain.ColAmount: 500.0},
		{domain.ColType: "Recette exceptionnelle", domain.ColCategory: "MiscRevenue", domain.ColAmount: "1200,50"},
		{domain.ColType: "Dépense", domain.ColAmount: "abc"},
		{domain.ColType: "Dépense", domain.ColAmount: -42.0},
	}

	candidates, rejected, err := suite.service.PreviewImport(ctx, rows, importedAt, "importer-1")

	suite.Require().NoError(err)
	suite.Len(candidates, 2)
	suite.Len(rejected, 3)

	// Missing type, non-numeric amount, negative amount: all reported.
	suite.Equal("champ Type manquant", rejected[0].Reason)
	suite.Equal("montant nul ou non numérique", rejected[1].Reason)
	suite.Equal("montant négatif", rejected[2].Reason)

	// Type without the income token classifies as expense, with defaults.
	expense := candidates[0]
	suite.Equal(domain.Expense, expense.Kind)
	suite.Equal("Other", expense.Category)
	suite.Equal("Dépense", expense.Description)
	suite.True(expense.Amount.Equal(decimal.NewFromInt(500)))
	suite.Equal(domain.StatusPending, expense.Status)
	suite.Equal("importer-1", expense.CreatedBy)
	suite.Contains(expense.Notes, "Importé depuis un tableur")
	suite.Equal(importedAt, expense.Date)

	// "recette" substring (case-insensitive) classifies as income; the
	// decimal comma is tolerated.
	income := candidates[1]
	suite.Equal(domain.Income, income.Kind)
	suite.Equal("MiscRevenue", income.Category)
	suite.True(income.Amount.Equal(decimal.RequireFromString("1200.50")))

	// Preview never touches the ledger.
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendEntries")
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendEntry")
}

func (suite *ImportServiceTestSuite) TestPreviewImport_DateCoercion() {
	ctx := context.Background()
	importedAt := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	rows := []domain.Row{
		{domain.ColType: "Dépense", domain.ColAmount: 10.0, domain.ColDate: "2025-02-01"},
		{domain.ColType: "Dépense", domain.ColAmount: 10.0, domain.ColDate: "03/02/2025"},
		{domain.ColType: "Dépense", domain.ColAmount: 10.0, domain.ColDate: "not a date"},
	}

	candidates, rejected, err := suite.service.PreviewImport(ctx, rows, importedAt, "importer-1")

	suite.Require().NoError(err)
	suite.Require().Len(candidates, 3)
	suite.Empty(rejected)

	suite.Equal(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), candidates[0].Date)
	suite.Equal(time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), candidates[1].Date)
	// Unparseable dates fall back to the import instant.
	suite.Equal(importedAt, candidates[2].Date)
}

func (suite *ImportServiceTestSuite) TestConfirmImport_AtomicBatch() {
	ctx := context.Background()

	candidates := []dto.CandidateEntry{
		{Kind: domain.Income, Category: "ServiceSales", Description: "prestation", Amount: decimal.NewFromInt(300)},
		{Kind: domain.Expense, Category: "Supplies", Description: "fournitures", Amount: decimal.NewFromInt(120)},
	}

	suite.mockRepo.On("AppendEntries", ctx, mock.MatchedBy(func(entries []domain.AccountingEntry) bool {
		if len(entries) != 2 {
			return false
		}
		for _, e := range entries {
			if e.EntryID == "" || e.Status != domain.StatusPending || e.CreatedBy != "importer-1" {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	imported, err := suite.service.ConfirmImport(ctx, candidates, "importer-1")

	suite.Require().NoError(err)
	suite.Equal(2, imported)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestConfirmImport_BatchFailureWritesNothing() {
	ctx := context.Background()

	candidates := []dto.CandidateEntry{
		{Kind: domain.Income, Category: "ServiceSales", Description: "prestation", Amount: decimal.NewFromInt(300)},
	}

	suite.mockRepo.On("AppendEntries", ctx, mock.Anything).Return(assert.AnError).Once()

	imported, err := suite.service.ConfirmImport(ctx, candidates, "importer-1")

	suite.Error(err)
	suite.Zero(imported)
}

func (suite *ImportServiceTestSuite) TestConfirmImport_RejectsInvalidCandidates() {
	ctx := context.Background()

	tests := []struct {
		name       string
		candidates []dto.CandidateEntry
	}{
		{"empty batch", []dto.CandidateEntry{}},
		{"non-positive amount", []dto.CandidateEntry{
			{Kind: domain.Income, Category: "X", Description: "d", Amount: decimal.Zero},
		}},
		{"unknown kind", []dto.CandidateEntry{
			{Kind: domain.EntryKind("TRANSFER"), Category: "X", Description: "d", Amount: decimal.NewFromInt(10)},
		}},
		{"empty description", []dto.CandidateEntry{
			{Kind: domain.Income, Category: "X", Description: "", Amount: decimal.NewFromInt(10)},
		}},
	}

	for _, tt := range tests {
		imported, err := suite.service.ConfirmImport(ctx, tt.candidates, "importer-1")
		suite.ErrorIs(err, apperrors.ErrValidation, tt.name)
		suite.Zero(imported, tt.name)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendEntries")
}

// Exported tables must survive re-import: kind, category, description and
// amount are preserved, and the synthetic summary row is dropped because
// its Type cell is empty.
func (suite *ImportServiceTestSuite) TestPreviewImport_RoundTripsExportedTable() {
	ctx := context.Background()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	inPeriod := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	entries := []domain.AccountingEntry{
		entry("e1", inPeriod, domain.Income, "ServiceSales", "1500", domain.StatusValidated),
		entry("e2", inPeriod, domain.Expense, "Rent", "800", domain.StatusPending),
	}
	bundle := services.ComputeBundle(domain.PeriodMonth, now, entries, nil, decimal.Zero, testTaxRate)
	table := services.ToTable(bundle)
	suite.Require().Len(table, 3) // two entries plus the summary row

	candidates, rejected, err := suite.service.PreviewImport(ctx, table, now, "importer-1")

	suite.Require().NoError(err)
	suite.Require().Len(candidates, 2)
	suite.Require().Len(rejected, 1) // the summary row has no Type

	suite.Equal(domain.Income, candidates[0].Kind)
	suite.Equal("ServiceSales", candidates[0].Category)
	suite.Equal(entries[0].Description, candidates[0].Description)
	suite.True(candidates[0].Amount.Equal(entries[0].Amount))

	suite.Equal(domain.Expense, candidates[1].Kind)
	suite.Equal("Rent", candidates[1].Category)
	suite.True(candidates[1].Amount.Equal(entries[1].Amount))
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
