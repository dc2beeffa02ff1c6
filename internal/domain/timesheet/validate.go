package timesheet

import (
	"fmt"
	"strings"
	"time"
)

// ValidationResult collects every failed rule for a grid. Valid is true
// iff Errors is empty.
type ValidationResult struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// Validate checks a row set against a period (ordered ISO dates) and
// returns every violation at once. codeLabels maps charge code IDs to
// display labels for row-specific messages; unresolvable codes fall
// back to the row position. Pure function, no side effects.
func Validate(rows []Row, period []string, codeLabels map[string]string) ValidationResult {
	var errs []string

	if len(rows) == 0 {
		errs = append(errs, "Add at least one charge code row")
	}

	missingCode := 0
	for _, r := range rows {
		if strings.TrimSpace(r.ChargeCodeID) == "" {
			missingCode++
		}
	}
	if missingCode > 0 {
		errs = append(errs, fmt.Sprintf("%d row(s) missing charge code", missingCode))
	}

	allEmpty := true
	for _, r := range rows {
		for _, e := range r.Entries {
			if e.Hours != 0 || e.IsLeave {
				allEmpty = false
			}
		}
	}
	if allEmpty {
		errs = append(errs, "Enter hours or mark leave days for at least one row")
	}

	seen := map[string]int{}
	for _, r := range rows {
		if code := strings.TrimSpace(r.ChargeCodeID); code != "" {
			seen[code]++
		}
	}
	for _, n := range seen {
		if n > 1 {
			errs = append(errs, "Duplicate charge codes: each charge code may appear on only one row")
			break
		}
	}

	for i, r := range rows {
		if strings.TrimSpace(r.ChargeCodeID) == "" {
			continue
		}
		filled := 0
		for _, e := range r.Entries {
			if e.Hours > 0 || e.IsLeave {
				filled++
			}
		}
		if filled > 0 && filled < len(period) {
			label, ok := codeLabels[r.ChargeCodeID]
			if !ok || label == "" {
				label = fmt.Sprintf("Row %d", i+1)
			}
			errs = append(errs, fmt.Sprintf("%s: fill in all %d days (%d/%d filled)", label, len(period), filled, len(period)))
		}
	}

	var empty []string
	for _, date := range period {
		if DayTotal(rows, date) == 0 {
			empty = append(empty, date)
		}
	}
	if len(empty) > 0 && len(empty) < len(period) {
		errs = append(errs, fmt.Sprintf("Missing hours for: %s", strings.Join(formatDates(empty), ", ")))
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// formatDates renders ISO dates as short human dates ("Jan 2").
// Unparseable values pass through unchanged.
func formatDates(dates []string) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			out = append(out, d)
			continue
		}
		out = append(out, t.Format("Jan 2"))
	}
	return out
}
