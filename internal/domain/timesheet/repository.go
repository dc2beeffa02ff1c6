package timesheet

import (
	"context"
	"time"
)

// Decision carries a manager's verdict on a submission.
type Decision struct {
	ID              string
	Status          Status
	RejectionReason *string
	DecidedBy       *string
	DecidedAt       time.Time
}

// SubmissionFilter narrows admin listings. Zero values match
// everything.
type SubmissionFilter struct {
	Status     Status
	EmployeeID string
}

type SubmissionRepository interface {
	Create(ctx context.Context, sub *Submission) error
	GetByID(ctx context.Context, id string) (*Submission, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodStart string) (*Submission, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Submission, error)
	ListAll(ctx context.Context, filter SubmissionFilter) ([]Submission, error)
	ListPendingByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]Submission, error)
	Update(ctx context.Context, sub *Submission) error
	UpdateDecision(ctx context.Context, d Decision) error
	UpdateStatus(ctx context.Context, id string, status Status) error
}
