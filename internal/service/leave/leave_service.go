package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naxrita/hrms-backend-go/internal/domain/leave"
	"github.com/naxrita/hrms-backend-go/internal/domain/notification"
	"github.com/naxrita/hrms-backend-go/internal/domain/user"
	"github.com/naxrita/hrms-backend-go/internal/pkg/database"
	"github.com/naxrita/hrms-backend-go/internal/pkg/validator"
)

// Notifier decouples leave flows from notification storage; failures
// there never fail the leave operation.
type Notifier interface {
	Notify(ctx context.Context, userID string, notifType notification.Type, message string, relatedID string)
}

type LeaveService struct {
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	user.UserRepository
	notifier Notifier
	tx       database.Transactor

	now func() time.Time
}

func NewLeaveService(
	requestRepository leave.LeaveRequestRepository,
	balanceRepository leave.LeaveBalanceRepository,
	userRepository user.UserRepository,
	notifier Notifier,
	tx database.Transactor,
) *LeaveService {
	return &LeaveService{
		LeaveRequestRepository: requestRepository,
		LeaveBalanceRepository: balanceRepository,
		UserRepository:         userRepository,
		notifier:               notifier,
		tx:                     tx,
		now:                    time.Now,
	}
}

// GetBalance returns the employee's balance, seeding the default
// opening balance for employees without a stored row.
func (s *LeaveService) GetBalance(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	if _, err := s.UserRepository.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get employee: %w", err)
	}

	balance, err := s.LeaveBalanceRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, leave.ErrBalanceNotFound) {
			balance = leave.NewDefaultBalance(employeeID)
			if err := s.LeaveBalanceRepository.Upsert(ctx, balance); err != nil {
				return leave.LeaveBalance{}, fmt.Errorf("failed to seed default balance: %w", err)
			}
			return balance, nil
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}

func (s *LeaveService) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	employee, err := s.UserRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}

	leaveType, _ := leave.ParseLeaveType(req.LeaveType)
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	days := end.Sub(start).Hours()/24 + 1

	today := s.today()
	if leaveType == leave.LeaveTypeSick {
		// Sick leave is reactive: only today or tomorrow, never backdated.
		tomorrow := today.AddDate(0, 0, 1)
		if start.Before(today) {
			return leave.LeaveRequest{}, leave.ErrSickLeaveWindow
		}
		if start.After(tomorrow) || end.After(tomorrow) {
			return leave.LeaveRequest{}, leave.ErrSickLeaveWindow
		}
	} else if start.Before(today) {
		return leave.LeaveRequest{}, leave.ErrPastDate
	}

	if leaveType != leave.LeaveTypeLWP {
		balance, err := s.GetBalance(ctx, req.EmployeeID)
		if err != nil {
			return leave.LeaveRequest{}, err
		}
		available := balance.Available(leaveType)
		if days > available {
			return leave.LeaveRequest{}, fmt.Errorf("%w. Available: %g, Requested: %g",
				leave.ErrInsufficientBalance, available, days)
		}
	}

	request := leave.LeaveRequest{
		EmployeeID:          employee.ID,
		EmployeeName:        employee.Name,
		EmployeeEmail:       employee.Email,
		EmployeeDesignation: employee.Designation,
		EmployeeDepartment:  employee.Department,
		LeaveType:           leaveType,
		StartDate:           start,
		EndDate:             end,
		Days:                days,
		Reason:              req.Reason,
		Status:              leave.LeaveStatusPending,
		AppliedOn:           s.now(),
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.notifyManager(ctx, employee, created)

	return created, nil
}

func (s *LeaveService) History(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

func (s *LeaveService) All(ctx context.Context) ([]leave.LeaveRequest, error) {
	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// PendingByManager returns pending requests from the manager's direct
// reports, resolved through the managerEmail link.
func (s *LeaveService) PendingByManager(ctx context.Context, managerEmail string) ([]leave.LeaveRequest, error) {
	reports, err := s.UserRepository.ListByManagerEmail(ctx, managerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		return []leave.LeaveRequest{}, nil
	}

	ids := make([]string, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.ID)
	}

	requests, err := s.LeaveRequestRepository.ListPendingByEmployeeIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return requests, nil
}

// GroupPendingByManager buckets every pending request under its
// owner's manager for the admin view.
func (s *LeaveService) GroupPendingByManager(ctx context.Context) ([]leave.ManagerGroup, error) {
	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return leave.GroupByManager(requests, users), nil
}

// UpdateStatus applies a manager decision. Approval deducts the
// employee's balance; both outcomes notify the employee.
func (s *LeaveService) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	status, _ := leave.ParseLeaveStatus(req.Status)
	if !request.Status.CanTransition(status) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decidedOn := s.now()
	decision := leave.LeaveDecision{
		ID:        request.ID,
		Status:    status,
		DecidedOn: decidedOn,
	}
	if status == leave.LeaveStatusRejected {
		decision.RejectionReason = &req.RejectionReason
	} else {
		if req.ApprovalNote != "" {
			decision.ApprovalNote = &req.ApprovalNote
		}
		if req.ApprovedBy != "" {
			decision.ApprovedBy = &req.ApprovedBy
		}
	}

	// Decision and balance deduction commit or roll back together.
	err = s.tx.Run(ctx, func(ctx context.Context) error {
		if err := s.LeaveRequestRepository.UpdateDecision(ctx, decision); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		if status == leave.LeaveStatusApproved {
			return s.deductBalance(ctx, request)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	request.Status = status
	request.RejectionReason = decision.RejectionReason
	request.ApprovalNote = decision.ApprovalNote
	request.ApprovedBy = decision.ApprovedBy
	request.DecidedOn = &decidedOn

	s.notifyEmployee(ctx, request)

	return request, nil
}

// AccrueMonthly credits every employee's balance for the current
// month: one earned day capped at 12 plus half a sick day. Employees
// who joined after the 15th or were already credited this month are
// skipped. Returns the number of balances updated.
func (s *LeaveService) AccrueMonthly(ctx context.Context) (int, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	now := s.now()
	updated := 0

	// One transaction for the whole sweep: a failed month is retried
	// whole rather than leaving some balances credited.
	err = s.tx.Run(ctx, func(ctx context.Context) error {
		for _, u := range users {
			if u.JoinedOn.IsZero() || u.JoinedOn.Day() > 15 {
				continue
			}

			balance, err := s.LeaveBalanceRepository.GetByEmployee(ctx, u.ID)
			if err != nil {
				if !errors.Is(err, leave.ErrBalanceNotFound) {
					return fmt.Errorf("failed to get balance for %s: %w", u.ID, err)
				}
				balance = leave.NewDefaultBalance(u.ID)
			}

			if balance.LastAccrualAt != nil &&
				balance.LastAccrualAt.Year() == now.Year() &&
				balance.LastAccrualAt.Month() == now.Month() {
				continue
			}

			balance.Earned = min(balance.Earned+1.0, 12)
			balance.Sick += 0.5
			accrualAt := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			balance.LastAccrualAt = &accrualAt

			if err := s.LeaveBalanceRepository.Upsert(ctx, balance); err != nil {
				return fmt.Errorf("failed to update balance for %s: %w", u.ID, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

func (s *LeaveService) deductBalance(ctx context.Context, request leave.LeaveRequest) error {
	balance, err := s.GetBalance(ctx, request.EmployeeID)
	if err != nil {
		return err
	}

	if request.LeaveType == leave.LeaveTypeLWP {
		balance.LWP += request.Days
	} else {
		balance.Deduct(request.LeaveType, request.Days)
	}

	if err := s.LeaveBalanceRepository.Upsert(ctx, balance); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

func (s *LeaveService) notifyManager(ctx context.Context, employee user.User, request leave.LeaveRequest) {
	if s.notifier == nil || employee.ManagerEmail == "" {
		return
	}
	manager, err := s.UserRepository.GetByEmail(ctx, employee.ManagerEmail)
	if err != nil {
		return
	}
	message := fmt.Sprintf("%s has requested %s leave from %s to %s (%g day(s))",
		employee.Name, request.LeaveType,
		request.StartDate.Format(time.DateOnly), request.EndDate.Format(time.DateOnly),
		request.Days)
	s.notifier.Notify(ctx, manager.ID, notification.TypeLeaveRequest, message, request.ID)
}

func (s *LeaveService) notifyEmployee(ctx context.Context, request leave.LeaveRequest) {
	if s.notifier == nil {
		return
	}
	dates := fmt.Sprintf("%s to %s",
		request.StartDate.Format(time.DateOnly), request.EndDate.Format(time.DateOnly))

	if request.Status == leave.LeaveStatusApproved {
		message := fmt.Sprintf("Your %s request (%s) has been approved", request.LeaveType, dates)
		if request.ApprovedBy != nil {
			message += " by " + *request.ApprovedBy
		}
		s.notifier.Notify(ctx, request.EmployeeID, notification.TypeLeaveApproved, message, request.ID)
		return
	}

	reason := ""
	if request.RejectionReason != nil {
		reason = *request.RejectionReason
	}
	message := fmt.Sprintf("Your %s request (%s) has been rejected. Reason: %s",
		request.LeaveType, dates, reason)
	s.notifier.Notify(ctx, request.EmployeeID, notification.TypeLeaveRejected, message, request.ID)
}

func (s *LeaveService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
