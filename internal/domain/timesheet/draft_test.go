package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftResyncPreservesOverlap(t *testing.T) {
	period := []string{"2026-08-01", "2026-08-02", "2026-08-03"}
	d := NewDraft("emp-1", period)
	rowID := d.Rows[0].ID
	require.True(t, d.SetChargeCode(rowID, "cc-1"))
	require.True(t, d.SetHours(rowID, "2026-08-02", 6.5))
	require.True(t, d.MarkLeave(rowID, "2026-08-03", true))

	d.Resync([]string{"2026-08-02", "2026-08-03", "2026-08-04"})

	entries := d.Rows[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, "2026-08-02", entries[0].Date)
	assert.Equal(t, 6.5, entries[0].Hours)
	assert.True(t, entries[1].IsLeave)
	assert.Equal(t, "2026-08-04", entries[2].Date)
	assert.Equal(t, 0.0, entries[2].Hours)
	assert.False(t, entries[2].IsLeave)
}

func TestDraftSetHoursRejectsOffStep(t *testing.T) {
	d := NewDraft("emp-1", []string{"2026-08-01"})
	rowID := d.Rows[0].ID

	assert.False(t, d.SetHours(rowID, "2026-08-01", 7.25))
	assert.False(t, d.SetHours(rowID, "2026-08-01", -1))
	assert.False(t, d.SetHours(rowID, "2026-08-01", 25))
	assert.True(t, d.SetHours(rowID, "2026-08-01", 7.5))
}

func TestDraftSetHoursClearsLeave(t *testing.T) {
	d := NewDraft("emp-1", []string{"2026-08-01"})
	rowID := d.Rows[0].ID
	require.True(t, d.MarkLeave(rowID, "2026-08-01", true))

	require.True(t, d.SetHours(rowID, "2026-08-01", 4))
	assert.False(t, d.Rows[0].Entries[0].IsLeave)
	assert.Equal(t, 4.0, d.Rows[0].Entries[0].Hours)
}

func TestDraftAddRemoveRows(t *testing.T) {
	d := NewDraft("emp-1", []string{"2026-08-01", "2026-08-02"})
	require.Len(t, d.Rows, 1)

	second := d.AddRow()
	require.Len(t, d.Rows, 2)
	assert.Len(t, second.Entries, 2)

	assert.True(t, d.RemoveRow(second.ID))
	assert.Len(t, d.Rows, 1)
	assert.False(t, d.RemoveRow("missing"))
}

func TestDraftTotalHours(t *testing.T) {
	d := NewDraft("emp-1", []string{"2026-08-01", "2026-08-02"})
	rowID := d.Rows[0].ID
	require.True(t, d.SetHours(rowID, "2026-08-01", 8))
	require.True(t, d.MarkLeave(rowID, "2026-08-02", true))

	assert.Equal(t, 16.0, d.TotalHours())
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusRejected, StatusSubmitted, true},
		{StatusSubmitted, StatusApproved, true},
		{StatusSubmitted, StatusRejected, true},
		{StatusSubmitted, StatusDraft, true},
		{StatusDraft, StatusApproved, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusSubmitted, false},
		{StatusRejected, StatusApproved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"draft", "submitted", "approved", "rejected"} {
		_, ok := ParseStatus(valid)
		assert.True(t, ok, valid)
	}
	for _, invalid := range []string{"", "Draft", "pending", "done"} {
		_, ok := ParseStatus(invalid)
		assert.False(t, ok, invalid)
	}
}
