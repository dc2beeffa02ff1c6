package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/holiday"
	"github.com/naxrita/hrms-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	h.ID = uuid.NewString()

	query := `
		INSERT INTO holidays (id, name, date, type, region, is_optional, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query,
		h.ID, h.Name, h.Date, h.Type, h.Region, h.IsOptional, h.Description, h.CreatedAt, h.UpdatedAt,
	)
	return err
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, date, type, region, is_optional, description, created_at, updated_at
		FROM holidays
		WHERE id = $1
	`
	var h holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Date, &h.Type, &h.Region, &h.IsOptional, &h.Description, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, holiday.ErrHolidayNotFound
		}
		return nil, err
	}
	return &h, nil
}

// List returns holidays ordered by date. Empty bounds are open-ended.
func (r *holidayRepositoryImpl) List(ctx context.Context, start, end string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, date, type, region, is_optional, description, created_at, updated_at
		FROM holidays
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.Region, &h.IsOptional, &h.Description, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
