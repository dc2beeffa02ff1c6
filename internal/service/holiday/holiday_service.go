package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/naxrita/hrms-backend-go/internal/domain/holiday"
)

type HolidayService struct {
	holiday.HolidayRepository
	now func() time.Time
}

func NewHolidayService(repository holiday.HolidayRepository) *HolidayService {
	return &HolidayService{
		HolidayRepository: repository,
		now:               time.Now,
	}
}

func (s *HolidayService) Create(ctx context.Context, req holiday.CreateRequest) (*holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hType, _ := holiday.ParseType(req.Type)

	now := s.now()
	h := &holiday.Holiday{
		Name:        req.Name,
		Date:        req.Date,
		Type:        hType,
		Region:      req.Region,
		IsOptional:  req.IsOptional,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.HolidayRepository.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}
	return h, nil
}

// List returns holidays ordered by date, optionally bounded to an
// inclusive ISO date range.
func (s *HolidayService) List(ctx context.Context, start, end string) ([]holiday.Holiday, error) {
	holidays, err := s.HolidayRepository.List(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

func (s *HolidayService) Delete(ctx context.Context, id string) error {
	if _, err := s.HolidayRepository.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get holiday: %w", err)
	}
	if err := s.HolidayRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}
