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
)

// --- Test Suite Setup ---

type ReportServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockReportRepository
	mockNotifier *MockNotificationSink
	service      portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportRepository)
	suite.mockNotifier = new(MockNotificationSink)
	suite.service = services.NewReportService(suite.mockRepo, suite.mockNotifier)
}

func (suite *ReportServiceTestSuite) sampleBundle() domain.MetricsBundle {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	inPeriod := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	entries := []domain.AccountingEntry{
		entry("e1", inPeriod, domain.Income, "ServiceSales", "1000", domain.StatusValidated),
		entry("e2", inPeriod, domain.Expense, "Rent", "400", domain.StatusValidated),
	}
	return services.ComputeBundle(domain.PeriodMonth, now, entries, nil, decimal.Zero, testTaxRate)
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestCreateReport_Success() {
	ctx := context.Background()
	bundle := suite.sampleBundle()

	suite.mockRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.ReportSnapshot")).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == services.NotificationTypeReport && n.Title == "Bilan mars" && !n.Read
	})).Return(nil).Once()

	report, err := suite.service.CreateReport(ctx, "Bilan mars", domain.PeriodMonth, bundle, "author-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.NotEmpty(report.ReportID)
	suite.Equal("Bilan mars", report.Title)
	suite.Equal(domain.ReportSent, report.Status)
	suite.Equal([]string{"Directeur", "Superviseur"}, report.Recipients)
	suite.Equal("author-1", report.CreatedBy)
	suite.True(report.Data.TotalIncome.Equal(bundle.TotalIncome))
	suite.True(report.Data.NetProfit.Equal(bundle.NetProfit))
	suite.Len(report.Data.Entries, len(bundle.PeriodEntries))
	suite.WithinDuration(time.Now(), report.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestCreateReport_EmptyTitle() {
	ctx := context.Background()
	bundle := suite.sampleBundle()

	for _, title := range []string{"", "   "} {
		report, err := suite.service.CreateReport(ctx, title, domain.PeriodMonth, bundle, "author-1")
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(report)
	}

	// Nothing persisted, nothing distributed.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveReport")
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify")
}

func (suite *ReportServiceTestSuite) TestCreateReport_SnapshotIsACopy() {
	ctx := context.Background()
	bundle := suite.sampleBundle()

	suite.mockRepo.On("SaveReport", ctx, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.Anything).Return(nil).Once()

	report, err := suite.service.CreateReport(ctx, "Bilan", domain.PeriodMonth, bundle, "author-1")
	suite.Require().NoError(err)

	// Mutating the source bundle afterwards must not leak into the snapshot.
	originalDescription := report.Data.Entries[0].Description
	bundle.PeriodEntries[0].Description = "mutated"
	suite.Equal(originalDescription, report.Data.Entries[0].Description)

	// Same for the shared recipients list.
	report.Recipients[0] = "changed"
	suite.Equal("Directeur", domain.ReportRecipients[0])
}

func (suite *ReportServiceTestSuite) TestCreateReport_NotifierFailureIsSwallowed() {
	ctx := context.Background()
	bundle := suite.sampleBundle()

	suite.mockRepo.On("SaveReport", ctx, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.Anything).Return(assert.AnError).Once()

	report, err := suite.service.CreateReport(ctx, "Bilan", domain.PeriodMonth, bundle, "author-1")

	// Fire and forget: the snapshot stands even when distribution fails.
	suite.NoError(err)
	suite.NotNil(report)
}

func (suite *ReportServiceTestSuite) TestCreateReport_SaveFailure() {
	ctx := context.Background()
	bundle := suite.sampleBundle()

	suite.mockRepo.On("SaveReport", ctx, mock.Anything).Return(assert.AnError).Once()

	report, err := suite.service.CreateReport(ctx, "Bilan", domain.PeriodMonth, bundle, "author-1")

	suite.Error(err)
	suite.Nil(report)
	// No notification for a snapshot that was never persisted.
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify")
}

func (suite *ReportServiceTestSuite) TestGetReportByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindReportByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.GetReportByID(ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(report)
}

func (suite *ReportServiceTestSuite) TestListReports() {
	ctx := context.Background()
	stored := []domain.ReportSnapshot{
		{ReportID: "r2", CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ReportID: "r1", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockRepo.On("ListReports", ctx).Return(stored, nil).Once()

	reports, err := suite.service.ListReports(ctx)

	suite.Require().NoError(err)
	suite.Equal(stored, reports)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
