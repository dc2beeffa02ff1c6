package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/leave"
	"github.com/naxrita/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.employee_name, lr.employee_email, lr.employee_designation, lr.employee_department,
	lr.leave_type, lr.start_date, lr.end_date, lr.days, lr.reason,
	lr.status, lr.rejection_reason, lr.approval_note, lr.approved_by,
	lr.applied_on, lr.decided_on, lr.created_at, lr.updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.EmployeeName,
		&lr.EmployeeEmail,
		&lr.EmployeeDesignation,
		&lr.EmployeeDepartment,
		&lr.LeaveType,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Days,
		&lr.Reason,
		&lr.Status,
		&lr.RejectionReason,
		&lr.ApprovalNote,
		&lr.ApprovedBy,
		&lr.AppliedOn,
		&lr.DecidedOn,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	request.ID = uuid.NewString()
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	query := `
		INSERT INTO leave_requests (
			id, employee_id, employee_name, employee_email, employee_designation, employee_department,
			leave_type, start_date, end_date, days, reason,
			status, applied_on, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := q.Exec(ctx, query,
		request.ID,
		request.EmployeeID,
		request.EmployeeName,
		request.EmployeeEmail,
		request.EmployeeDesignation,
		request.EmployeeDepartment,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Days,
		request.Reason,
		request.Status,
		request.AppliedOn,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1
	`
	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.applied_on DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + leaveRequestColumns + `
		FROM leave_requests lr
		ORDER BY lr.applied_on DESC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListPendingByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.status = $1 AND lr.employee_id = ANY($2)
		ORDER BY lr.applied_on DESC
	`
	rows, err := q.Query(ctx, query, leave.LeaveStatusPending, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, decision leave.LeaveDecision) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_requests
		SET status = $2,
			rejection_reason = $3,
			approval_note = $4,
			approved_by = $5,
			decided_on = $6,
			updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		decision.ID,
		decision.Status,
		decision.RejectionReason,
		decision.ApprovalNote,
		decision.ApprovedBy,
		decision.DecidedOn,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
