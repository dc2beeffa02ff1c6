package chargecode

import "context"

type ChargeCodeRepository interface {
	Create(ctx context.Context, cc *ChargeCode) error
	GetByID(ctx context.Context, id string) (*ChargeCode, error)
	GetByCode(ctx context.Context, code string) (*ChargeCode, error)
	List(ctx context.Context, activeOnly bool) ([]ChargeCode, error)
	Update(ctx context.Context, cc *ChargeCode) error
	Delete(ctx context.Context, id string) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id string) (*Assignment, error)
	GetActive(ctx context.Context, employeeID, chargeCodeID string) (*Assignment, error)
	ListByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]Assignment, error)
	ListAll(ctx context.Context) ([]Assignment, error)
	HasActiveForChargeCode(ctx context.Context, chargeCodeID string) (bool, error)
	Deactivate(ctx context.Context, id string) error
}
