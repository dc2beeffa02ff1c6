package holiday

import "context"

type HolidayService interface {
	Create(ctx context.Context, req CreateRequest) (*Holiday, error)
	List(ctx context.Context, start, end string) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
