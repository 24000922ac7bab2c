package services

import (
	"context"
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
)

// MetricsSvcFacade defines the accounting aggregation engine. The engine is
// stateless: every call re-reads the ledger and the sales feed and
// recomputes the bundle from source, so reconciled imports are reflected on
// the next computation with no separate invalidation channel.
type MetricsSvcFacade interface {
	ComputeMetrics(ctx context.Context, period domain.PeriodToken, now time.Time) (*domain.MetricsBundle, error)
}
