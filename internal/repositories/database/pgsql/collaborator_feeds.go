package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
)

// PgxSalesFeed reads the point-of-sale transaction collection. The feed is
// read-only from the engine's perspective: the sales table is owned by the
// point-of-sale subsystem.
type PgxSalesFeed struct {
	BaseRepository
}

func newPgxSalesFeed(db *pgxpool.Pool) portssvc.SalesFeed {
	return &PgxSalesFeed{BaseRepository: BaseRepository{Pool: db}}
}

var _ portssvc.SalesFeed = (*PgxSalesFeed)(nil)

// ListSales returns the current sales snapshot. There is no date-range
// parameter: the metrics engine does its own filtering.
func (r *PgxSalesFeed) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT sale_date, total, paid FROM sales;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.SaleRecord{}
	for rows.Next() {
		var sale domain.SaleRecord
		if err := rows.Scan(&sale.Date, &sale.Total, &sale.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sale rows: %w", err)
	}

	return sales, nil
}

// PgxInventoryFeed computes the current inventory valuation.
type PgxInventoryFeed struct {
	BaseRepository
}

func newPgxInventoryFeed(db *pgxpool.Pool) portssvc.InventoryFeed {
	return &PgxInventoryFeed{BaseRepository: BaseRepository{Pool: db}}
}

var _ portssvc.InventoryFeed = (*PgxInventoryFeed)(nil)

// StockValue returns the sum of purchase price times stock quantity across
// all SKUs, as a single scalar snapshot.
func (r *PgxInventoryFeed) StockValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	query := `SELECT COALESCE(SUM(purchase_price * stock_qty), 0) FROM inventory_items;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute stock value: %w", err)
	}
	return value, nil
}

// PgxNotificationSink appends report notification events to the in-app
// notification collection read by the console's UI layer.
type PgxNotificationSink struct {
	BaseRepository
}

func newPgxNotificationSink(db *pgxpool.Pool) portssvc.NotificationSink {
	return &PgxNotificationSink{BaseRepository: BaseRepository{Pool: db}}
}

var _ portssvc.NotificationSink = (*PgxNotificationSink)(nil)

// Notify stores one notification event. Fire and forget for the caller: a
// failure here must not undo the operation that emitted the event.
func (r *PgxNotificationSink) Notify(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (type, title, message, created_at, read, report_id)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, n.Type, n.Title, n.Message, n.CreatedAt, n.Read, n.ReportID)
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}
