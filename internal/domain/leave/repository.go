package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	ListPendingByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]LeaveRequest, error)
	UpdateDecision(ctx context.Context, decision LeaveDecision) error
}

// LeaveDecision carries the single approve/reject mutation a request
// receives; no further transitions happen after it is applied.
type LeaveDecision struct {
	ID              string
	Status          LeaveStatus
	RejectionReason *string
	ApprovalNote    *string
	ApprovedBy      *string
	DecidedOn       time.Time
}

type LeaveBalanceRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (LeaveBalance, error)
	Upsert(ctx context.Context, balance LeaveBalance) error
	ListAll(ctx context.Context) ([]LeaveBalance, error)
}
