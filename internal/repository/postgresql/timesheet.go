package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/timesheet"
	"github.com/naxrita/hrms-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.SubmissionRepository {
	return &timesheetRepositoryImpl{db: db}
}

const submissionColumns = `
	t.id, t.employee_id, t.employee_name, t.employee_email,
	t.period_label, t.period_start, t.period_end, t.rows, t.total_hours,
	t.status, t.rejection_reason, t.decided_by, t.decided_at,
	t.submitted_at, t.created_at, t.updated_at`

// Rows are stored as a JSONB document; the grid is always read and
// written whole.
func scanSubmission(row pgx.Row) (*timesheet.Submission, error) {
	var sub timesheet.Submission
	var rowsJSON []byte
	err := row.Scan(
		&sub.ID,
		&sub.EmployeeID,
		&sub.EmployeeName,
		&sub.EmployeeEmail,
		&sub.PeriodLabel,
		&sub.PeriodStart,
		&sub.PeriodEnd,
		&rowsJSON,
		&sub.TotalHours,
		&sub.Status,
		&sub.RejectionReason,
		&sub.DecidedBy,
		&sub.DecidedAt,
		&sub.SubmittedAt,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rowsJSON, &sub.Rows); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *timesheetRepositoryImpl) Create(ctx context.Context, sub *timesheet.Submission) error {
	q := GetQuerier(ctx, r.db)

	sub.ID = uuid.NewString()
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	rowsJSON, err := json.Marshal(sub.Rows)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO timesheets (
			id, employee_id, employee_name, employee_email,
			period_label, period_start, period_end, rows, total_hours,
			status, submitted_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = q.Exec(ctx, query,
		sub.ID,
		sub.EmployeeID,
		sub.EmployeeName,
		sub.EmployeeEmail,
		sub.PeriodLabel,
		sub.PeriodStart,
		sub.PeriodEnd,
		rowsJSON,
		sub.TotalHours,
		sub.Status,
		sub.SubmittedAt,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	return err
}

func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (*timesheet.Submission, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + submissionColumns + `
		FROM timesheets t
		WHERE t.id = $1
	`
	sub, err := scanSubmission(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (r *timesheetRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodStart string) (*timesheet.Submission, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + submissionColumns + `
		FROM timesheets t
		WHERE t.employee_id = $1 AND t.period_start = $2
	`
	sub, err := scanSubmission(q.QueryRow(ctx, query, employeeID, periodStart))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (r *timesheetRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]timesheet.Submission, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + submissionColumns + `
		FROM timesheets t
		WHERE t.employee_id = $1
		ORDER BY t.period_start DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (r *timesheetRepositoryImpl) ListAll(ctx context.Context, filter timesheet.SubmissionFilter) ([]timesheet.Submission, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + submissionColumns + `
		FROM timesheets t
		WHERE ($1 = '' OR t.status = $1)
		  AND ($2 = '' OR t.employee_id = $2)
		ORDER BY t.submitted_at DESC
	`
	rows, err := q.Query(ctx, query, string(filter.Status), filter.EmployeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (r *timesheetRepositoryImpl) ListPendingByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]timesheet.Submission, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + submissionColumns + `
		FROM timesheets t
		WHERE t.status = $1 AND t.employee_id = ANY($2)
		ORDER BY t.submitted_at DESC
	`
	rows, err := q.Query(ctx, query, timesheet.StatusSubmitted, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (r *timesheetRepositoryImpl) Update(ctx context.Context, sub *timesheet.Submission) error {
	q := GetQuerier(ctx, r.db)

	rowsJSON, err := json.Marshal(sub.Rows)
	if err != nil {
		return err
	}

	query := `
		UPDATE timesheets
		SET period_label = $2,
			period_end = $3,
			rows = $4,
			total_hours = $5,
			status = $6,
			rejection_reason = NULL,
			decided_by = NULL,
			decided_at = NULL,
			submitted_at = $7,
			updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		sub.ID,
		sub.PeriodLabel,
		sub.PeriodEnd,
		rowsJSON,
		sub.TotalHours,
		sub.Status,
		sub.SubmittedAt,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrSubmissionNotFound
	}
	return nil
}

func (r *timesheetRepositoryImpl) UpdateDecision(ctx context.Context, d timesheet.Decision) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE timesheets
		SET status = $2,
			rejection_reason = $3,
			decided_by = $4,
			decided_at = $5,
			updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, d.ID, d.Status, d.RejectionReason, d.DecidedBy, d.DecidedAt)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrSubmissionNotFound
	}
	return nil
}

func (r *timesheetRepositoryImpl) UpdateStatus(ctx context.Context, id string, status timesheet.Status) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE timesheets
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrSubmissionNotFound
	}
	return nil
}

func collectSubmissions(rows pgx.Rows) ([]timesheet.Submission, error) {
	var subs []timesheet.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}
