package timesheet

// LeaveDayHours is the fixed credit for a day marked as leave.
const LeaveDayHours = 8.0

// EntryHours resolves a cell to its effective hours. Leave wins over
// any typed value.
func EntryHours(e DayEntry) float64 {
	if e.IsLeave {
		return LeaveDayHours
	}
	return e.Hours
}

// RowTotal sums the effective hours across a row.
func RowTotal(r Row) float64 {
	var total float64
	for _, e := range r.Entries {
		total += EntryHours(e)
	}
	return total
}

// DayTotal sums the effective hours of every row for one date.
func DayTotal(rows []Row, date string) float64 {
	var total float64
	for _, r := range rows {
		for _, e := range r.Entries {
			if e.Date == date {
				total += EntryHours(e)
			}
		}
	}
	return total
}

// GrandTotal sums the effective hours of the whole grid.
func GrandTotal(rows []Row) float64 {
	var total float64
	for _, r := range rows {
		total += RowTotal(r)
	}
	return total
}
