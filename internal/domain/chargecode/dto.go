package chargecode

import (
	"strings"

	"github.com/naxrita/hrms-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ProjectName string `json:"project_name"`
	IsActive    *bool  `json:"is_active"`
	CreatedBy   string `json:"created_by"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.CreatedBy) {
		errs = append(errs, validator.ValidationError{Field: "created_by", Message: "created_by is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ProjectName *string `json:"project_name"`
	IsActive    *bool   `json:"is_active"`
}

type AssignRequest struct {
	EmployeeID    string   `json:"employee_id"`
	ChargeCodeIDs []string `json:"charge_code_ids"`
	AssignedBy    string   `json:"assigned_by"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
}

func (r AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(r.ChargeCodeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "charge_code_ids", Message: "charge_code_ids must not be empty"})
	}
	if validator.IsEmpty(r.AssignedBy) {
		errs = append(errs, validator.ValidationError{Field: "assigned_by", Message: "assigned_by is required"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID          string `json:"_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ProjectName string `json:"project_name"`
	IsActive    bool   `json:"is_active"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

func ToResponse(c *ChargeCode) Response {
	return Response{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		ProjectName: c.ProjectName,
		IsActive:    c.IsActive,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToResponseList(codes []ChargeCode) []Response {
	out := make([]Response, 0, len(codes))
	for i := range codes {
		out = append(out, ToResponse(&codes[i]))
	}
	return out
}

type AssignmentResponse struct {
	ID             string  `json:"_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	ChargeCodeID   string  `json:"charge_code_id"`
	ChargeCode     string  `json:"charge_code"`
	ChargeCodeName string  `json:"charge_code_name"`
	AssignedBy     string  `json:"assigned_by"`
	AssignedAt     string  `json:"assigned_at"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	IsActive       bool    `json:"is_active"`
}

func ToAssignmentResponse(a *Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		ChargeCodeID:   a.ChargeCodeID,
		ChargeCode:     a.ChargeCode,
		ChargeCodeName: a.ChargeCodeName,
		AssignedBy:     a.AssignedBy,
		AssignedAt:     a.AssignedAt.Format("2006-01-02T15:04:05Z07:00"),
		StartDate:      a.StartDate,
		EndDate:        a.EndDate,
		IsActive:       a.IsActive,
	}
}

func ToAssignmentResponseList(assignments []Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		out = append(out, ToAssignmentResponse(&assignments[i]))
	}
	return out
}
