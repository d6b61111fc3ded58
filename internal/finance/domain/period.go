package domain

import (
	"time"
)

const (
	PeriodMonthly = "monthly"
	PeriodWeekly  = "weekly"
)

// Range is an inclusive [Start, End] window.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func IsValidPeriod(period string) bool {
	return period == PeriodMonthly || period == PeriodWeekly
}

// ResolvePeriod computes the reporting window containing the reference
// instant. Monthly windows run from the first instant of the month to the
// last millisecond of its final day. Weekly windows start on the most
// recent Monday at midnight; a Monday reference starts its own week.
func ResolvePeriod(period string, reference time.Time) Range {
	switch period {
	case PeriodWeekly:
		daysSinceMonday := (int(reference.Weekday()) + 6) % 7
		start := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())
		start = start.AddDate(0, 0, -daysSinceMonday)
		end := start.AddDate(0, 0, 6).Add(endOfDay)
		return Range{Start: start, End: end}
	default:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
		return Range{Start: start, End: end}
	}
}

// MonthRange resolves the window of a given calendar month (1-12).
func MonthRange(month time.Month, year int, loc *time.Location) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return Range{Start: start, End: end}
}

const endOfDay = 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond
