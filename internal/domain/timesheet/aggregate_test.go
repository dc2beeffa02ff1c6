package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveDayOverridesHours(t *testing.T) {
	row := Row{
		ID:           "r1",
		ChargeCodeID: "cc-1",
		Entries: []DayEntry{
			{Date: "2026-08-03", Hours: 3, IsLeave: true},
			{Date: "2026-08-04", Hours: 7.5},
		},
	}

	assert.Equal(t, 8.0, EntryHours(row.Entries[0]))
	assert.Equal(t, 15.5, RowTotal(row))
	assert.Equal(t, 8.0, DayTotal([]Row{row}, "2026-08-03"))
}

func TestDayTotalAcrossRows(t *testing.T) {
	rows := []Row{
		{ID: "r1", ChargeCodeID: "cc-1", Entries: []DayEntry{
			{Date: "2026-08-03", Hours: 4},
			{Date: "2026-08-04", Hours: 4},
		}},
		{ID: "r2", ChargeCodeID: "cc-2", Entries: []DayEntry{
			{Date: "2026-08-03", Hours: 3.5},
			{Date: "2026-08-04", IsLeave: true},
		}},
	}

	assert.Equal(t, 7.5, DayTotal(rows, "2026-08-03"))
	assert.Equal(t, 12.0, DayTotal(rows, "2026-08-04"))
	assert.Equal(t, 0.0, DayTotal(rows, "2026-08-05"))
}

func TestGrandTotalEqualsSumOfDayTotals(t *testing.T) {
	rows := []Row{
		{ID: "r1", ChargeCodeID: "cc-1", Entries: []DayEntry{
			{Date: "2026-08-03", Hours: 8},
			{Date: "2026-08-04", Hours: 6.5},
		}},
		{ID: "r2", ChargeCodeID: "cc-2", Entries: []DayEntry{
			{Date: "2026-08-03", IsLeave: true},
			{Date: "2026-08-04", Hours: 1.5},
		}},
	}

	byDays := DayTotal(rows, "2026-08-03") + DayTotal(rows, "2026-08-04")
	assert.Equal(t, byDays, GrandTotal(rows))
	assert.Equal(t, 24.0, GrandTotal(rows))
}
