package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is a read-only point-of-sale transaction from the sales feed.
// The engine never mutates this collection.
type SaleRecord struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
	Paid  bool            `json:"paid"`
}
