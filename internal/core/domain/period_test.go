package domain_test

import (
	"testing"
	"time"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     domain.PeriodToken
		wantStart time.Time
	}{
		{
			name:      "week is a rolling seven days",
			token:     domain.PeriodWeek,
			wantStart: time.Date(2025, time.March, 8, 10, 30, 0, 0, time.UTC),
		},
		{
			name:      "month starts on the first",
			token:     domain.PeriodMonth,
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quarter starts on the quarter boundary",
			token:     domain.PeriodQuarter,
			wantStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "year starts on January first",
			token:     domain.PeriodYear,
			wantStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "unknown token falls back to month",
			token:     domain.PeriodToken("fortnight"),
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "empty token falls back to month",
			token:     domain.PeriodToken(""),
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolvePeriod(tt.token, now)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, now, got.End)
		})
	}
}

func TestResolvePeriod_QuarterBoundaries(t *testing.T) {
	tests := []struct {
		month     time.Month
		wantStart time.Month
	}{
		{time.January, time.January},
		{time.March, time.January},
		{time.April, time.April},
		{time.June, time.April},
		{time.July, time.July},
		{time.September, time.July},
		{time.October, time.October},
		{time.December, time.October},
	}

	for _, tt := range tests {
		now := time.Date(2025, tt.month, 20, 0, 0, 0, 0, time.UTC)
		got := domain.ResolvePeriod(domain.PeriodQuarter, now)
		assert.Equal(t, tt.wantStart, got.Start.Month(), "quarter start for %s", tt.month)
		assert.Equal(t, 1, got.Start.Day())
	}
}

func TestInterval_Contains(t *testing.T) {
	interval := domain.Interval{
		Start: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	// Half-open: start is inside, end is not.
	assert.True(t, interval.Contains(interval.Start))
	assert.False(t, interval.Contains(interval.End))
	assert.True(t, interval.Contains(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)))
	assert.False(t, interval.Contains(time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)))
}
