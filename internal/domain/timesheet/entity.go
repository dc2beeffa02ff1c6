package timesheet

import "time"

// DayEntry is a single cell of the timesheet grid. Dates are ISO
// calendar dates (YYYY-MM-DD). A leave-marked day contributes a fixed 8
// hours regardless of the stored Hours value.
type DayEntry struct {
	Date    string  `json:"date"`
	Hours   float64 `json:"hours"`
	IsLeave bool    `json:"isLeave"`
}

// Row is one charge-code line of the grid. Entries cover exactly the
// dates of the active period; Draft.Resync maintains that invariant
// when the period changes.
type Row struct {
	ID           string     `json:"id"`
	ChargeCodeID string     `json:"chargeCodeId"`
	Entries      []DayEntry `json:"entries"`
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// ParseStatus rejects values outside the closed status set.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// CanTransition encodes the linear submission machine:
// draft/rejected -> submitted, submitted -> draft (reopen),
// submitted -> approved (terminal) | rejected.
func (s Status) CanTransition(target Status) bool {
	switch s {
	case StatusDraft:
		return target == StatusSubmitted
	case StatusRejected:
		return target == StatusSubmitted
	case StatusSubmitted:
		return target == StatusDraft || target == StatusApproved || target == StatusRejected
	}
	return false
}

// Terminal reports whether the submission is locked for good.
func (s Status) Terminal() bool {
	return s == StatusApproved
}

// Submission is a persisted timesheet for one fortnight period.
type Submission struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	EmployeeEmail string

	PeriodLabel string
	PeriodStart string
	PeriodEnd   string

	Rows       []Row
	TotalHours float64

	Status          Status
	RejectionReason *string
	DecidedBy       *string
	DecidedAt       *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
