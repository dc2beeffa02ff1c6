package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/chargecode"
	"github.com/naxrita/hrms-backend-go/internal/pkg/database"
)

type chargeCodeRepositoryImpl struct {
	db *database.DB
}

func NewChargeCodeRepository(db *database.DB) chargecode.ChargeCodeRepository {
	return &chargeCodeRepositoryImpl{db: db}
}

const chargeCodeColumns = `
	id, code, name, description, project_name, is_active, created_by, created_at, updated_at`

func scanChargeCode(row pgx.Row) (*chargecode.ChargeCode, error) {
	var cc chargecode.ChargeCode
	err := row.Scan(
		&cc.ID,
		&cc.Code,
		&cc.Name,
		&cc.Description,
		&cc.ProjectName,
		&cc.IsActive,
		&cc.CreatedBy,
		&cc.CreatedAt,
		&cc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *chargeCodeRepositoryImpl) Create(ctx context.Context, cc *chargecode.ChargeCode) error {
	q := GetQuerier(ctx, r.db)

	cc.ID = uuid.NewString()

	query := `
		INSERT INTO charge_codes (id, code, name, description, project_name, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query,
		cc.ID, cc.Code, cc.Name, cc.Description, cc.ProjectName, cc.IsActive, cc.CreatedBy, cc.CreatedAt, cc.UpdatedAt,
	)
	return err
}

func (r *chargeCodeRepositoryImpl) GetByID(ctx context.Context, id string) (*chargecode.ChargeCode, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + chargeCodeColumns + `
		FROM charge_codes
		WHERE id = $1
	`
	cc, err := scanChargeCode(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chargecode.ErrChargeCodeNotFound
		}
		return nil, err
	}
	return cc, nil
}

func (r *chargeCodeRepositoryImpl) GetByCode(ctx context.Context, code string) (*chargecode.ChargeCode, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + chargeCodeColumns + `
		FROM charge_codes
		WHERE code = $1
	`
	cc, err := scanChargeCode(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chargecode.ErrChargeCodeNotFound
		}
		return nil, err
	}
	return cc, nil
}

func (r *chargeCodeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]chargecode.ChargeCode, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + chargeCodeColumns + `
		FROM charge_codes
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []chargecode.ChargeCode
	for rows.Next() {
		cc, err := scanChargeCode(rows)
		if err != nil {
			return nil, err
		}
		codes = append(codes, *cc)
	}
	return codes, rows.Err()
}

func (r *chargeCodeRepositoryImpl) Update(ctx context.Context, cc *chargecode.ChargeCode) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE charge_codes
		SET name = $2,
			description = $3,
			project_name = $4,
			is_active = $5,
			updated_at = $6
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, cc.ID, cc.Name, cc.Description, cc.ProjectName, cc.IsActive, cc.UpdatedAt)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return chargecode.ErrChargeCodeNotFound
	}
	return nil
}

func (r *chargeCodeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM charge_codes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return chargecode.ErrChargeCodeNotFound
	}
	return nil
}

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) chargecode.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	id, employee_id, employee_name, charge_code_id, charge_code, charge_code_name,
	assigned_by, assigned_at, start_date, end_date, is_active, removed_at`

func scanAssignment(row pgx.Row) (*chargecode.Assignment, error) {
	var a chargecode.Assignment
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.EmployeeName,
		&a.ChargeCodeID,
		&a.ChargeCode,
		&a.ChargeCodeName,
		&a.AssignedBy,
		&a.AssignedAt,
		&a.StartDate,
		&a.EndDate,
		&a.IsActive,
		&a.RemovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepositoryImpl) Create(ctx context.Context, a *chargecode.Assignment) error {
	q := GetQuerier(ctx, r.db)

	a.ID = uuid.NewString()

	query := `
		INSERT INTO charge_code_assignments (
			id, employee_id, employee_name, charge_code_id, charge_code, charge_code_name,
			assigned_by, assigned_at, start_date, end_date, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.Exec(ctx, query,
		a.ID, a.EmployeeID, a.EmployeeName, a.ChargeCodeID, a.ChargeCode, a.ChargeCodeName,
		a.AssignedBy, a.AssignedAt, a.StartDate, a.EndDate, a.IsActive,
	)
	return err
}

func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (*chargecode.Assignment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + assignmentColumns + `
		FROM charge_code_assignments
		WHERE id = $1
	`
	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chargecode.ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) GetActive(ctx context.Context, employeeID, chargeCodeID string) (*chargecode.Assignment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + assignmentColumns + `
		FROM charge_code_assignments
		WHERE employee_id = $1 AND charge_code_id = $2 AND is_active
	`
	a, err := scanAssignment(q.QueryRow(ctx, query, employeeID, chargeCodeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chargecode.ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]chargecode.Assignment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + assignmentColumns + `
		FROM charge_code_assignments
		WHERE employee_id = $1
	`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY assigned_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *assignmentRepositoryImpl) ListAll(ctx context.Context) ([]chargecode.Assignment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT` + assignmentColumns + `
		FROM charge_code_assignments
		ORDER BY assigned_at DESC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *assignmentRepositoryImpl) HasActiveForChargeCode(ctx context.Context, chargeCodeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM charge_code_assignments
			WHERE charge_code_id = $1 AND is_active
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, chargeCodeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *assignmentRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE charge_code_assignments
		SET is_active = FALSE, removed_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return chargecode.ErrAssignmentNotFound
	}
	return nil
}

func collectAssignments(rows pgx.Rows) ([]chargecode.Assignment, error) {
	var assignments []chargecode.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}
