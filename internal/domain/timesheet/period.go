package timesheet

import (
	"fmt"
	"time"
)

// PeriodSelection names one of the three fortnight windows the grid can
// be edited against.
type PeriodSelection string

const (
	PeriodFirstHalf  PeriodSelection = "1st-half"
	PeriodSecondHalf PeriodSelection = "2nd-half"
	PeriodPrevious   PeriodSelection = "previous"
)

// ParsePeriodSelection rejects values outside the closed set.
func ParsePeriodSelection(s string) (PeriodSelection, bool) {
	switch PeriodSelection(s) {
	case PeriodFirstHalf, PeriodSecondHalf, PeriodPrevious:
		return PeriodSelection(s), true
	}
	return "", false
}

// PeriodDates resolves a selection to its ordered ISO dates relative to
// now. The first half covers days 1 through 14 of the current month,
// the second half day 15 through month end, and previous the 14 days
// ending the day before the current month starts.
func PeriodDates(now time.Time, sel PeriodSelection) []string {
	year, month, _ := now.Date()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	var start, end time.Time
	switch sel {
	case PeriodFirstHalf:
		start = monthStart
		end = monthStart.AddDate(0, 0, 13)
	case PeriodSecondHalf:
		start = monthStart.AddDate(0, 0, 14)
		end = monthStart.AddDate(0, 1, -1)
	case PeriodPrevious:
		start = monthStart.AddDate(0, 0, -14)
		end = monthStart.AddDate(0, 0, -1)
	default:
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}

// PeriodLabel renders a selection as a human range, e.g.
// "Aug 1 - Aug 14, 2026".
func PeriodLabel(now time.Time, sel PeriodSelection) string {
	dates := PeriodDates(now, sel)
	if len(dates) == 0 {
		return ""
	}
	start, _ := time.Parse("2006-01-02", dates[0])
	end, _ := time.Parse("2006-01-02", dates[len(dates)-1])
	return fmt.Sprintf("%s - %s, %d", start.Format("Jan 2"), end.Format("Jan 2"), end.Year())
}

// PeriodBounds returns the first and last ISO dates of a selection.
func PeriodBounds(now time.Time, sel PeriodSelection) (string, string) {
	dates := PeriodDates(now, sel)
	if len(dates) == 0 {
		return "", ""
	}
	return dates[0], dates[len(dates)-1]
}
