package chargecode

import "context"

type ChargeCodeService interface {
	Create(ctx context.Context, req CreateRequest) (*ChargeCode, error)
	List(ctx context.Context, activeOnly bool) ([]ChargeCode, error)
	Update(ctx context.Context, req UpdateRequest) (*ChargeCode, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, req AssignRequest) ([]Assignment, error)
	ListByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]Assignment, error)
	ListAssignments(ctx context.Context) ([]Assignment, error)
	RemoveAssignment(ctx context.Context, id string) error
}
