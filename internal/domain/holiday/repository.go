package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByID(ctx context.Context, id string) (*Holiday, error)
	List(ctx context.Context, start, end string) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
