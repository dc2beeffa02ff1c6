package timesheet

import (
	"github.com/google/uuid"

	"github.com/naxrita/hrms-backend-go/internal/pkg/validator"
)

// Draft is the in-memory editing state for one employee and period.
// It is discarded or submitted when the editing session ends; nothing
// here touches storage.
type Draft struct {
	EmployeeID string
	Period     []string
	Rows       []Row
}

// NewDraft starts an empty grid over the given period with one blank
// row, mirroring how a fresh sheet opens.
func NewDraft(employeeID string, period []string) *Draft {
	d := &Draft{EmployeeID: employeeID, Period: period}
	d.AddRow()
	return d
}

func (d *Draft) AddRow() Row {
	row := Row{ID: uuid.NewString(), Entries: blankEntries(d.Period)}
	d.Rows = append(d.Rows, row)
	return row
}

func (d *Draft) RemoveRow(rowID string) bool {
	for i, r := range d.Rows {
		if r.ID == rowID {
			d.Rows = append(d.Rows[:i], d.Rows[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Draft) SetChargeCode(rowID, chargeCodeID string) bool {
	for i := range d.Rows {
		if d.Rows[i].ID == rowID {
			d.Rows[i].ChargeCodeID = chargeCodeID
			return true
		}
	}
	return false
}

// SetHours records hours for one cell. Hours outside 0-24 or off the
// half-hour step are refused. Setting hours clears a leave mark.
func (d *Draft) SetHours(rowID, date string, hours float64) bool {
	if !validator.IsValidHours(hours) {
		return false
	}
	e := d.entry(rowID, date)
	if e == nil {
		return false
	}
	e.Hours = hours
	e.IsLeave = false
	return true
}

// MarkLeave toggles a cell's leave flag. A marked day counts fixed
// hours regardless of any typed value.
func (d *Draft) MarkLeave(rowID, date string, leave bool) bool {
	e := d.entry(rowID, date)
	if e == nil {
		return false
	}
	e.IsLeave = leave
	return true
}

// Resync realigns every row to a new period: entries for dates no
// longer in the period are dropped, entries for new dates are inserted
// at zero hours, and surviving entries keep their values.
func (d *Draft) Resync(period []string) {
	for i := range d.Rows {
		kept := make(map[string]DayEntry, len(d.Rows[i].Entries))
		for _, e := range d.Rows[i].Entries {
			kept[e.Date] = e
		}
		entries := make([]DayEntry, 0, len(period))
		for _, date := range period {
			if e, ok := kept[date]; ok {
				entries = append(entries, e)
			} else {
				entries = append(entries, DayEntry{Date: date})
			}
		}
		d.Rows[i].Entries = entries
	}
	d.Period = period
}

// Validate runs the grid rules against the draft's own period.
func (d *Draft) Validate(codeLabels map[string]string) ValidationResult {
	return Validate(d.Rows, d.Period, codeLabels)
}

func (d *Draft) TotalHours() float64 {
	return GrandTotal(d.Rows)
}

func (d *Draft) entry(rowID, date string) *DayEntry {
	for i := range d.Rows {
		if d.Rows[i].ID != rowID {
			continue
		}
		for j := range d.Rows[i].Entries {
			if d.Rows[i].Entries[j].Date == date {
				return &d.Rows[i].Entries[j]
			}
		}
	}
	return nil
}

func blankEntries(period []string) []DayEntry {
	entries := make([]DayEntry, 0, len(period))
	for _, date := range period {
		entries = append(entries, DayEntry{Date: date})
	}
	return entries
}
