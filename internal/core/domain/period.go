package domain

import "time"

// PeriodToken is a coarse calendar-bucket selector used to scope metrics.
type PeriodToken string

const (
	PeriodWeek    PeriodToken = "week"
	PeriodMonth   PeriodToken = "month"
	PeriodQuarter PeriodToken = "quarter"
	PeriodYear    PeriodToken = "year"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the interval.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// ResolvePeriod maps a period token and a reference instant to a concrete
// half-open interval ending at now:
//
//	week    -> [now - 7 days, now)
//	month   -> [first day of now's month 00:00, now)
//	quarter -> [first day of now's calendar quarter 00:00, now)
//	year    -> [Jan 1 of now's year 00:00, now)
//
// An unknown token falls back to month. Pure function, no error conditions.
func ResolvePeriod(token PeriodToken, now time.Time) Interval {
	switch token {
	case PeriodWeek:
		return Interval{Start: now.AddDate(0, 0, -7), End: now}
	case PeriodQuarter:
		quarter := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
		return Interval{Start: start, End: now}
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Interval{Start: start, End: now}
	case PeriodMonth:
		fallthrough
	default:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Interval{Start: start, End: now}
	}
}
