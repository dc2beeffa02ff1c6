package timesheet

import "context"

type TimesheetService interface {
	Submit(ctx context.Context, req SubmitRequest) (*Submission, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Submission, error)
	All(ctx context.Context, filter SubmissionFilter) ([]Submission, error)
	PendingByManager(ctx context.Context, managerEmail string) ([]Submission, error)
	Approve(ctx context.Context, req DecisionRequest) (*Submission, error)
	Reject(ctx context.Context, req DecisionRequest) (*Submission, error)
	Reopen(ctx context.Context, id string) (*Submission, error)
	HolidayEntries(ctx context.Context, periodStart, periodEnd string) ([]HolidayEntry, error)
}
