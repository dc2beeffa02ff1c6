package notification

import "time"

type Type string

const (
	TypeLeaveRequest       Type = "leave_request"
	TypeLeaveApproved      Type = "leave_approved"
	TypeLeaveRejected      Type = "leave_rejected"
	TypeTimesheetSubmitted Type = "timesheet_submitted"
	TypeTimesheetApproved  Type = "timesheet_approved"
	TypeTimesheetRejected  Type = "timesheet_rejected"
)

type Notification struct {
	ID        string
	UserID    string
	Type      Type
	Message   string
	RelatedID *string
	Read      bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
