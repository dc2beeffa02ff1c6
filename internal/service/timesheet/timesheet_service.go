package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naxrita/hrms-backend-go/internal/domain/chargecode"
	"github.com/naxrita/hrms-backend-go/internal/domain/holiday"
	"github.com/naxrita/hrms-backend-go/internal/domain/leave"
	"github.com/naxrita/hrms-backend-go/internal/domain/notification"
	"github.com/naxrita/hrms-backend-go/internal/domain/timesheet"
	"github.com/naxrita/hrms-backend-go/internal/domain/user"
)

type Notifier interface {
	Notify(ctx context.Context, userID string, notifType notification.Type, message string, relatedID string)
}

type TimesheetService struct {
	timesheet.SubmissionRepository
	chargecode.ChargeCodeRepository
	leave.LeaveRequestRepository
	holiday.HolidayRepository
	user.UserRepository
	notifier Notifier

	now func() time.Time
}

func NewTimesheetService(
	submissionRepository timesheet.SubmissionRepository,
	chargeCodeRepository chargecode.ChargeCodeRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	holidayRepository holiday.HolidayRepository,
	userRepository user.UserRepository,
	notifier Notifier,
) *TimesheetService {
	return &TimesheetService{
		SubmissionRepository:   submissionRepository,
		ChargeCodeRepository:   chargeCodeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		HolidayRepository:      holidayRepository,
		UserRepository:         userRepository,
		notifier:               notifier,
		now:                    time.Now,
	}
}

// Submit runs the full grid validation server-side and stores the
// submission. An existing non-draft submission for the same period
// blocks resubmission; a draft or rejected one is replaced in place.
func (s *TimesheetService) Submit(ctx context.Context, req timesheet.SubmitRequest) (*timesheet.Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employee, err := s.UserRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	period := periodDates(req.PeriodStart, req.PeriodEnd)

	labels, err := s.chargeCodeLabels(ctx)
	if err != nil {
		return nil, err
	}

	if result := timesheet.Validate(req.Rows, period, labels); !result.Valid {
		return nil, timesheet.ValidationFailure(result)
	}

	if err := s.checkLeaveDaysApproved(ctx, req.EmployeeID, req.Rows); err != nil {
		return nil, err
	}

	now := s.now()
	sub := &timesheet.Submission{
		EmployeeID:    employee.ID,
		EmployeeName:  employee.Name,
		EmployeeEmail: employee.Email,
		PeriodLabel:   req.PeriodLabel,
		PeriodStart:   req.PeriodStart,
		PeriodEnd:     req.PeriodEnd,
		Rows:          req.Rows,
		TotalHours:    timesheet.GrandTotal(req.Rows),
		Status:        timesheet.StatusSubmitted,
		SubmittedAt:   now,
	}

	existing, err := s.SubmissionRepository.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.PeriodStart)
	if err != nil && !errors.Is(err, timesheet.ErrSubmissionNotFound) {
		return nil, fmt.Errorf("failed to check existing submission: %w", err)
	}
	if existing != nil {
		if !existing.Status.CanTransition(timesheet.StatusSubmitted) {
			return nil, timesheet.ErrPeriodAlreadySubmitted
		}
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
		if err := s.SubmissionRepository.Update(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to update submission: %w", err)
		}
	} else {
		if err := s.SubmissionRepository.Create(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to create submission: %w", err)
		}
	}

	s.notifyManager(ctx, employee, sub)

	return sub, nil
}

func (s *TimesheetService) ListByEmployee(ctx context.Context, employeeID string) ([]timesheet.Submission, error) {
	subs, err := s.SubmissionRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

func (s *TimesheetService) All(ctx context.Context, filter timesheet.SubmissionFilter) ([]timesheet.Submission, error) {
	subs, err := s.SubmissionRepository.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

// PendingByManager returns submitted timesheets from the manager's
// direct reports.
func (s *TimesheetService) PendingByManager(ctx context.Context, managerEmail string) ([]timesheet.Submission, error) {
	reports, err := s.UserRepository.ListByManagerEmail(ctx, managerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		return []timesheet.Submission{}, nil
	}

	ids := make([]string, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.ID)
	}

	subs, err := s.SubmissionRepository.ListPendingByEmployeeIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}
	return subs, nil
}

func (s *TimesheetService) Approve(ctx context.Context, req timesheet.DecisionRequest) (*timesheet.Submission, error) {
	return s.decide(ctx, req, timesheet.StatusApproved)
}

func (s *TimesheetService) Reject(ctx context.Context, req timesheet.DecisionRequest) (*timesheet.Submission, error) {
	if err := req.ValidateRejection(); err != nil {
		return nil, err
	}
	return s.decide(ctx, req, timesheet.StatusRejected)
}

// Reopen returns a submitted timesheet to draft so the employee can
// edit and resubmit.
func (s *TimesheetService) Reopen(ctx context.Context, id string) (*timesheet.Submission, error) {
	sub, err := s.SubmissionRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if !sub.Status.CanTransition(timesheet.StatusDraft) {
		if sub.Status.Terminal() {
			return nil, timesheet.ErrSubmissionLocked
		}
		return nil, timesheet.ErrInvalidTransition
	}

	if err := s.SubmissionRepository.UpdateStatus(ctx, id, timesheet.StatusDraft); err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	sub.Status = timesheet.StatusDraft
	return sub, nil
}

// HolidayEntries returns holiday cells to pre-fill for a period, each
// credited the standard day.
func (s *TimesheetService) HolidayEntries(ctx context.Context, periodStart, periodEnd string) ([]timesheet.HolidayEntry, error) {
	holidays, err := s.HolidayRepository.List(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	entries := make([]timesheet.HolidayEntry, 0, len(holidays))
	for _, h := range holidays {
		entries = append(entries, timesheet.HolidayEntry{
			Date:        h.Date,
			HolidayName: h.Name,
			Hours:       timesheet.LeaveDayHours,
		})
	}
	return entries, nil
}

func (s *TimesheetService) decide(ctx context.Context, req timesheet.DecisionRequest, status timesheet.Status) (*timesheet.Submission, error) {
	sub, err := s.SubmissionRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if !sub.Status.CanTransition(status) {
		if sub.Status.Terminal() {
			return nil, timesheet.ErrSubmissionLocked
		}
		return nil, timesheet.ErrInvalidTransition
	}

	decidedAt := s.now()
	decision := timesheet.Decision{
		ID:        sub.ID,
		Status:    status,
		DecidedAt: decidedAt,
	}
	if req.DecidedBy != "" {
		decision.DecidedBy = &req.DecidedBy
	}
	if status == timesheet.StatusRejected {
		decision.RejectionReason = &req.RejectionReason
	}

	if err := s.SubmissionRepository.UpdateDecision(ctx, decision); err != nil {
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	sub.Status = status
	sub.RejectionReason = decision.RejectionReason
	sub.DecidedBy = decision.DecidedBy
	sub.DecidedAt = &decidedAt

	s.notifyEmployee(ctx, sub)

	return sub, nil
}

// checkLeaveDaysApproved requires every leave-marked cell to fall
// inside an approved leave request.
func (s *TimesheetService) checkLeaveDaysApproved(ctx context.Context, employeeID string, rows []timesheet.Row) error {
	var approved []leave.LeaveRequest
	loaded := false

	for _, r := range rows {
		for _, e := range r.Entries {
			if !e.IsLeave {
				continue
			}
			if !loaded {
				requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
				if err != nil {
					return fmt.Errorf("failed to list leave requests: %w", err)
				}
				for _, lr := range requests {
					if lr.Status == leave.LeaveStatusApproved {
						approved = append(approved, lr)
					}
				}
				loaded = true
			}
			if !coveredByLeave(approved, e.Date) {
				return fmt.Errorf("%w: %s", timesheet.ErrLeaveNotApproved, e.Date)
			}
		}
	}
	return nil
}

func coveredByLeave(approved []leave.LeaveRequest, date string) bool {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	for _, lr := range approved {
		if !day.Before(lr.StartDate) && !day.After(lr.EndDate) {
			return true
		}
	}
	return false
}

func (s *TimesheetService) chargeCodeLabels(ctx context.Context) (map[string]string, error) {
	codes, err := s.ChargeCodeRepository.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list charge codes: %w", err)
	}
	labels := make(map[string]string, len(codes))
	for _, c := range codes {
		labels[c.ID] = c.Label()
	}
	return labels, nil
}

func (s *TimesheetService) notifyManager(ctx context.Context, employee user.User, sub *timesheet.Submission) {
	if s.notifier == nil || employee.ManagerEmail == "" {
		return
	}
	manager, err := s.UserRepository.GetByEmail(ctx, employee.ManagerEmail)
	if err != nil {
		return
	}
	message := fmt.Sprintf("%s submitted timesheet for %s to %s (%g hours)",
		employee.Name, sub.PeriodStart, sub.PeriodEnd, sub.TotalHours)
	s.notifier.Notify(ctx, manager.ID, notification.TypeTimesheetSubmitted, message, sub.ID)
}

func (s *TimesheetService) notifyEmployee(ctx context.Context, sub *timesheet.Submission) {
	if s.notifier == nil {
		return
	}
	period := fmt.Sprintf("%s to %s", sub.PeriodStart, sub.PeriodEnd)

	if sub.Status == timesheet.StatusApproved {
		message := fmt.Sprintf("Your timesheet for %s has been approved", period)
		s.notifier.Notify(ctx, sub.EmployeeID, notification.TypeTimesheetApproved, message, sub.ID)
		return
	}

	reason := ""
	if sub.RejectionReason != nil {
		reason = *sub.RejectionReason
	}
	message := fmt.Sprintf("Your timesheet for %s has been rejected. Reason: %s", period, reason)
	s.notifier.Notify(ctx, sub.EmployeeID, notification.TypeTimesheetRejected, message, sub.ID)
}

func periodDates(start, end string) []string {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil
	}
	endDay, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil
	}

	var dates []string
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}
