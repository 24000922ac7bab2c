package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
)

// Shared mock implementations of the repository and collaborator ports,
// used across the service test suites in this package.

// MockEntryRepository is a mock type for the EntryRepositoryFacade interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) AppendEntry(ctx context.Context, entry domain.AccountingEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) AppendEntries(ctx context.Context, entries []domain.AccountingEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.AccountingEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) RemoveEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context) ([]domain.AccountingEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingEntry), args.Error(1)
}

// MockReportRepository is a mock type for the ReportRepositoryFacade interface
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.ReportSnapshot) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.ReportSnapshot, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportSnapshot), args.Error(1)
}

func (m *MockReportRepository) ListReports(ctx context.Context) ([]domain.ReportSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportSnapshot), args.Error(1)
}

// MockSalesFeed is a mock type for the SalesFeed collaborator interface
type MockSalesFeed struct {
	mock.Mock
}

func (m *MockSalesFeed) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

// MockInventoryFeed is a mock type for the InventoryFeed collaborator interface
type MockInventoryFeed struct {
	mock.Mock
}

func (m *MockInventoryFeed) StockValue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockNotificationSink is a mock type for the NotificationSink interface
type MockNotificationSink struct {
	mock.Mock
}

func (m *MockNotificationSink) Notify(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// MockMetricsService is a mock type for the MetricsSvcFacade interface
type MockMetricsService struct {
	mock.Mock
}

func (m *MockMetricsService) ComputeMetrics(ctx context.Context, period domain.PeriodToken, now time.Time) (*domain.MetricsBundle, error) {
	args := m.Called(ctx, period, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetricsBundle), args.Error(1)
}
