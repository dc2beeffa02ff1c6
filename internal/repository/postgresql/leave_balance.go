package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/leave"
	"github.com/naxrita/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT employee_id, casual, sick, earned, lwp, last_accrual_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
	`
	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&b.EmployeeID,
		&b.Casual,
		&b.Sick,
		&b.Earned,
		&b.LWP,
		&b.LastAccrualAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) Upsert(ctx context.Context, balance leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_balances (employee_id, casual, sick, earned, lwp, last_accrual_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (employee_id) DO UPDATE
		SET casual = EXCLUDED.casual,
			sick = EXCLUDED.sick,
			earned = EXCLUDED.earned,
			lwp = EXCLUDED.lwp,
			last_accrual_at = EXCLUDED.last_accrual_at,
			updated_at = NOW()
	`
	_, err := q.Exec(ctx, query,
		balance.EmployeeID,
		balance.Casual,
		balance.Sick,
		balance.Earned,
		balance.LWP,
		balance.LastAccrualAt,
	)
	return err
}

func (r *leaveBalanceRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT employee_id, casual, sick, earned, lwp, last_accrual_at, updated_at
		FROM leave_balances
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		err := rows.Scan(&b.EmployeeID, &b.Casual, &b.Sick, &b.Earned, &b.LWP, &b.LastAccrualAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
