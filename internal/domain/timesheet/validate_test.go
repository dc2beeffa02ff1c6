package timesheet

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPeriod(n int) []string {
	dates := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		dates = append(dates, fmt.Sprintf("2026-08-%02d", i))
	}
	return dates
}

func filledRow(code string, period []string, hours float64) Row {
	entries := make([]DayEntry, 0, len(period))
	for _, d := range period {
		entries = append(entries, DayEntry{Date: d, Hours: hours})
	}
	return Row{ID: "row-" + code, ChargeCodeID: code, Entries: entries}
}

func TestValidateAllZeroGrid(t *testing.T) {
	period := testPeriod(14)
	rows := []Row{filledRow("cc-1", period, 0), filledRow("cc-2", period, 0)}

	result := Validate(rows, period, nil)

	require.False(t, result.Valid)
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Enter hours") {
			found = true
		}
	}
	assert.True(t, found, "expected the enter-hours error, got %v", result.Errors)
}

func TestValidateEmptyRowSet(t *testing.T) {
	result := Validate(nil, testPeriod(14), nil)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Add at least one charge code row")
	// Vacuously empty grids also fail the enter-hours rule; each rule
	// is evaluated independently.
	assert.Contains(t, result.Errors, "Enter hours or mark leave days for at least one row")
}

func TestValidateMissingChargeCodes(t *testing.T) {
	period := testPeriod(14)
	rows := []Row{
		filledRow("", period, 8),
		filledRow("cc-1", period, 8),
		filledRow("  ", period, 8),
	}

	result := Validate(rows, period, nil)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "2 row(s) missing charge code")
}

func TestValidateDuplicateChargeCodesSingleError(t *testing.T) {
	period := testPeriod(14)
	for _, n := range []int{2, 3, 5} {
		rows := make([]Row, 0, n)
		for i := 0; i < n; i++ {
			r := filledRow("cc-dup", period, 8)
			r.ID = fmt.Sprintf("row-%d", i)
			rows = append(rows, r)
		}

		result := Validate(rows, period, nil)

		count := 0
		for _, e := range result.Errors {
			if strings.Contains(e, "Duplicate charge codes") {
				count++
			}
		}
		assert.Equal(t, 1, count, "%d duplicated rows", n)
	}
}

func TestValidateBlankCodesAreNotDuplicates(t *testing.T) {
	period := testPeriod(14)
	rows := []Row{
		filledRow("  ", period, 8),
		filledRow("  ", period, 8),
	}

	result := Validate(rows, period, nil)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "2 row(s) missing charge code")
	for _, e := range result.Errors {
		assert.NotContains(t, e, "Duplicate charge codes")
	}
}

func TestValidatePartialFill(t *testing.T) {
	period := testPeriod(14)
	labels := map[string]string{"cc-1": "PROJ-ALPHA"}

	partial := filledRow("cc-1", period, 0)
	for i := 0; i < 5; i++ {
		partial.Entries[i].Hours = 8
	}

	result := Validate([]Row{partial}, period, labels)
	require.False(t, result.Valid)
	found := ""
	for _, e := range result.Errors {
		if strings.Contains(e, "fill in all") {
			found = e
		}
	}
	require.NotEmpty(t, found)
	assert.Contains(t, found, "PROJ-ALPHA")
	assert.Contains(t, found, "5/14")

	full := filledRow("cc-1", period, 8)
	result = Validate([]Row{full}, period, labels)
	for _, e := range result.Errors {
		assert.NotContains(t, e, "fill in all")
	}

	empty := filledRow("cc-1", period, 0)
	result = Validate([]Row{empty}, period, labels)
	for _, e := range result.Errors {
		assert.NotContains(t, e, "fill in all")
	}
}

func TestValidatePartialFillRowFallbackLabel(t *testing.T) {
	period := testPeriod(14)
	partial := filledRow("cc-unknown", period, 0)
	partial.Entries[0].Hours = 4

	result := Validate([]Row{partial}, period, nil)

	found := ""
	for _, e := range result.Errors {
		if strings.Contains(e, "fill in all") {
			found = e
		}
	}
	require.NotEmpty(t, found)
	assert.Contains(t, found, "Row 1")
}

func TestValidateMissingDatesListed(t *testing.T) {
	period := testPeriod(3)
	row := filledRow("cc-1", period, 8)
	row.Entries[1].Hours = 0

	result := Validate([]Row{row}, period, map[string]string{"cc-1": "PROJ"})

	found := ""
	for _, e := range result.Errors {
		if strings.Contains(e, "Missing hours") {
			found = e
		}
	}
	require.NotEmpty(t, found)
	assert.Contains(t, found, "Aug 2")
	assert.NotContains(t, found, "Aug 1")
}

func TestValidateNoMissingDatesErrorWhenAllEmpty(t *testing.T) {
	period := testPeriod(3)
	row := filledRow("cc-1", period, 0)

	result := Validate([]Row{row}, period, nil)

	for _, e := range result.Errors {
		assert.NotContains(t, e, "Missing hours")
	}
}

func TestValidateLeaveCountsAsFilled(t *testing.T) {
	period := testPeriod(3)
	row := filledRow("cc-1", period, 0)
	for i := range row.Entries {
		row.Entries[i].IsLeave = true
	}

	result := Validate([]Row{row}, period, map[string]string{"cc-1": "PROJ"})

	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	period := testPeriod(14)
	rows := []Row{
		filledRow("", period, 0),
		filledRow("", period, 0),
	}

	result := Validate(rows, period, nil)

	require.False(t, result.Valid)
	assert.GreaterOrEqual(t, len(result.Errors), 2)
}
