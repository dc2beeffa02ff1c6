package leave

import "context"

type LeaveService interface {
	GetBalance(ctx context.Context, employeeID string) (LeaveBalance, error)
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequest, error)
	History(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	All(ctx context.Context) ([]LeaveRequest, error)
	PendingByManager(ctx context.Context, managerEmail string) ([]LeaveRequest, error)
	GroupPendingByManager(ctx context.Context) ([]ManagerGroup, error)
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveRequest, error)
	AccrueMonthly(ctx context.Context) (int, error)
}
