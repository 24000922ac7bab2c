package services

import (
	"context"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesFeed exposes the point-of-sale transaction collection. The feed has
// no date-range query: it returns the current snapshot and the metrics
// engine does its own date filtering.
type SalesFeed interface {
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
}

// InventoryFeed supplies the current inventory valuation, computed
// externally as the sum of purchase price times stock quantity across all
// SKUs. The engine treats it as a constant for the duration of a call.
type InventoryFeed interface {
	StockValue(ctx context.Context) (decimal.Decimal, error)
}

// NotificationSink accepts report notification events. Fire and forget:
// there is no acknowledgment contract and emit failures must not fail the
// operation that triggered them.
type NotificationSink interface {
	Notify(ctx context.Context, notification domain.Notification) error
}
