package chargecode

import "time"

// ChargeCode is a billable project code timesheet rows book hours
// against. Code values are stored uppercase and unique.
type ChargeCode struct {
	ID          string
	Code        string
	Name        string
	Description string
	ProjectName string
	IsActive    bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label is the display form used in timesheet validation messages.
func (c ChargeCode) Label() string {
	if c.Name != "" {
		return c.Code + " " + c.Name
	}
	return c.Code
}

// Assignment links a charge code to an employee. Removal is a soft
// delete via IsActive so history survives.
type Assignment struct {
	ID             string
	EmployeeID     string
	EmployeeName   string
	ChargeCodeID   string
	ChargeCode     string
	ChargeCodeName string
	AssignedBy     string
	AssignedAt     time.Time
	StartDate      *string
	EndDate        *string
	IsActive       bool
	RemovedAt      *time.Time
}
