package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodDates(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		sel   PeriodSelection
		days  int
		first string
		last  string
	}{
		{"first half", PeriodFirstHalf, 14, "2026-08-01", "2026-08-14"},
		{"second half", PeriodSecondHalf, 17, "2026-08-15", "2026-08-31"},
		{"previous fortnight", PeriodPrevious, 14, "2026-07-18", "2026-07-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := PeriodDates(now, tt.sel)
			require.Len(t, dates, tt.days)
			assert.Equal(t, tt.first, dates[0])
			assert.Equal(t, tt.last, dates[len(dates)-1])
		})
	}
}

func TestPeriodDatesFebruary(t *testing.T) {
	now := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)

	dates := PeriodDates(now, PeriodSecondHalf)
	require.NotEmpty(t, dates)
	assert.Equal(t, "2026-02-15", dates[0])
	assert.Equal(t, "2026-02-28", dates[len(dates)-1])
}

func TestParsePeriodSelection(t *testing.T) {
	for _, valid := range []string{"1st-half", "2nd-half", "previous"} {
		_, ok := ParsePeriodSelection(valid)
		assert.True(t, ok, valid)
	}
	for _, invalid := range []string{"", "current", "3rd-half", "First-Half"} {
		_, ok := ParsePeriodSelection(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestPeriodLabel(t *testing.T) {
	now := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Aug 1 - Aug 14, 2026", PeriodLabel(now, PeriodFirstHalf))
}
