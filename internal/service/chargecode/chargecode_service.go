package chargecode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naxrita/hrms-backend-go/internal/domain/chargecode"
	"github.com/naxrita/hrms-backend-go/internal/domain/user"
)

type ChargeCodeService struct {
	chargecode.ChargeCodeRepository
	chargecode.AssignmentRepository
	user.UserRepository

	now func() time.Time
}

func NewChargeCodeService(
	chargeCodeRepository chargecode.ChargeCodeRepository,
	assignmentRepository chargecode.AssignmentRepository,
	userRepository user.UserRepository,
) *ChargeCodeService {
	return &ChargeCodeService{
		ChargeCodeRepository: chargeCodeRepository,
		AssignmentRepository: assignmentRepository,
		UserRepository:       userRepository,
		now:                  time.Now,
	}
}

func (s *ChargeCodeService) Create(ctx context.Context, req chargecode.CreateRequest) (*chargecode.ChargeCode, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.ChargeCodeRepository.GetByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, chargecode.ErrChargeCodeNotFound) {
		return nil, fmt.Errorf("failed to check existing charge code: %w", err)
	}
	if existing != nil {
		return nil, chargecode.ErrChargeCodeExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.now()
	cc := &chargecode.ChargeCode{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		ProjectName: req.ProjectName,
		IsActive:    isActive,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ChargeCodeRepository.Create(ctx, cc); err != nil {
		return nil, fmt.Errorf("failed to create charge code: %w", err)
	}
	return cc, nil
}

func (s *ChargeCodeService) List(ctx context.Context, activeOnly bool) ([]chargecode.ChargeCode, error) {
	codes, err := s.ChargeCodeRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list charge codes: %w", err)
	}
	return codes, nil
}

func (s *ChargeCodeService) Update(ctx context.Context, req chargecode.UpdateRequest) (*chargecode.ChargeCode, error) {
	cc, err := s.ChargeCodeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get charge code: %w", err)
	}

	if req.Name != nil {
		cc.Name = *req.Name
	}
	if req.Description != nil {
		cc.Description = *req.Description
	}
	if req.ProjectName != nil {
		cc.ProjectName = *req.ProjectName
	}
	if req.IsActive != nil {
		cc.IsActive = *req.IsActive
	}
	cc.UpdatedAt = s.now()

	if err := s.ChargeCodeRepository.Update(ctx, cc); err != nil {
		return nil, fmt.Errorf("failed to update charge code: %w", err)
	}
	return cc, nil
}

// Delete removes a charge code unless an active assignment still
// references it.
func (s *ChargeCodeService) Delete(ctx context.Context, id string) error {
	inUse, err := s.AssignmentRepository.HasActiveForChargeCode(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check assignments: %w", err)
	}
	if inUse {
		return chargecode.ErrChargeCodeInUse
	}

	if err := s.ChargeCodeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete charge code: %w", err)
	}
	return nil
}

// Assign links charge codes to an employee. Unknown codes and codes
// already assigned are skipped, matching bulk-assignment semantics.
func (s *ChargeCodeService) Assign(ctx context.Context, req chargecode.AssignRequest) ([]chargecode.Assignment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employee, err := s.UserRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	assigner, err := s.UserRepository.GetByID(ctx, req.AssignedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigner: %w", err)
	}
	if assigner.Role != user.RoleAdmin && assigner.Role != user.RoleManager {
		return nil, chargecode.ErrAssignPermissionDenied
	}

	var created []chargecode.Assignment
	for _, ccID := range req.ChargeCodeIDs {
		cc, err := s.ChargeCodeRepository.GetByID(ctx, ccID)
		if err != nil {
			if errors.Is(err, chargecode.ErrChargeCodeNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get charge code: %w", err)
		}

		existing, err := s.AssignmentRepository.GetActive(ctx, req.EmployeeID, ccID)
		if err != nil && !errors.Is(err, chargecode.ErrAssignmentNotFound) {
			return nil, fmt.Errorf("failed to check existing assignment: %w", err)
		}
		if existing != nil {
			continue
		}

		a := chargecode.Assignment{
			EmployeeID:     employee.ID,
			EmployeeName:   employee.Name,
			ChargeCodeID:   cc.ID,
			ChargeCode:     cc.Code,
			ChargeCodeName: cc.Name,
			AssignedBy:     assigner.ID,
			AssignedAt:     s.now(),
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			IsActive:       true,
		}
		if err := s.AssignmentRepository.Create(ctx, &a); err != nil {
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}
		created = append(created, a)
	}

	return created, nil
}

func (s *ChargeCodeService) ListByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]chargecode.Assignment, error) {
	assignments, err := s.AssignmentRepository.ListByEmployee(ctx, employeeID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (s *ChargeCodeService) ListAssignments(ctx context.Context) ([]chargecode.Assignment, error) {
	assignments, err := s.AssignmentRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// RemoveAssignment soft-deletes an assignment.
func (s *ChargeCodeService) RemoveAssignment(ctx context.Context, id string) error {
	if _, err := s.AssignmentRepository.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get assignment: %w", err)
	}
	if err := s.AssignmentRepository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}
