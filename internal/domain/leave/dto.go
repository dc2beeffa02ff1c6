package leave

import (
	"time"

	"github.com/naxrita/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if _, ok := ParseLeaveType(r.LeaveType); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Casual, Sick, Earned, LWP",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveStatusRequest struct {
	ID              string `json:"-"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	ApprovalNote    string `json:"approval_note,omitempty"`
	ApprovedBy      string `json:"approved_by,omitempty"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "leave id is required",
		})
	}

	status, ok := ParseLeaveStatus(r.Status)
	if !ok || status == LeaveStatusPending {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		})
	}

	// Rejection requires a reason; approval never does.
	if status == LeaveStatusRejected && validator.IsEmpty(r.RejectionReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection reason is mandatory",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BalanceResponse is the flat wire shape of GET /api/leaves/balance.
type BalanceResponse struct {
	Casual float64 `json:"casual"`
	Sick   float64 `json:"sick"`
	Earned float64 `json:"earned"`
	LWP    float64 `json:"lwp"`
}

func ToBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		Casual: b.Casual,
		Sick:   b.Sick,
		Earned: b.Earned,
		LWP:    b.LWP,
	}
}

type LeaveResponse struct {
	ID                  string  `json:"_id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name,omitempty"`
	EmployeeEmail       string  `json:"employee_email,omitempty"`
	EmployeeDesignation string  `json:"employee_designation,omitempty"`
	EmployeeDepartment  string  `json:"employee_department,omitempty"`
	LeaveType           string  `json:"leave_type"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	Days                float64 `json:"days"`
	Reason              string  `json:"reason"`
	Status              string  `json:"status"`
	RejectionReason     string  `json:"rejection_reason,omitempty"`
	ApprovalNote        string  `json:"approval_note,omitempty"`
	ApprovedBy          string  `json:"approved_by,omitempty"`
	AppliedOn           string  `json:"applied_on"`
	DecidedOn           string  `json:"decided_on,omitempty"`
}

func ToResponse(lr LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:                  lr.ID,
		EmployeeID:          lr.EmployeeID,
		EmployeeName:        lr.EmployeeName,
		EmployeeEmail:       lr.EmployeeEmail,
		EmployeeDesignation: lr.EmployeeDesignation,
		EmployeeDepartment:  lr.EmployeeDepartment,
		LeaveType:           string(lr.LeaveType),
		StartDate:           lr.StartDate.Format(time.DateOnly),
		EndDate:             lr.EndDate.Format(time.DateOnly),
		Days:                lr.Days,
		Reason:              lr.Reason,
		Status:              string(lr.Status),
		AppliedOn:           lr.AppliedOn.Format(time.RFC3339),
	}
	if lr.RejectionReason != nil {
		resp.RejectionReason = *lr.RejectionReason
	}
	if lr.ApprovalNote != nil {
		resp.ApprovalNote = *lr.ApprovalNote
	}
	if lr.ApprovedBy != nil {
		resp.ApprovedBy = *lr.ApprovedBy
	}
	if lr.DecidedOn != nil {
		resp.DecidedOn = lr.DecidedOn.Format(time.RFC3339)
	}
	return resp
}

func ToResponseList(requests []LeaveRequest) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, ToResponse(lr))
	}
	return responses
}

type ManagerGroupResponse struct {
	ManagerName  string          `json:"manager_name"`
	ManagerEmail string          `json:"manager_email"`
	Leaves       []LeaveResponse `json:"leaves"`
}

func ToGroupResponseList(groups []ManagerGroup) []ManagerGroupResponse {
	responses := make([]ManagerGroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, ManagerGroupResponse{
			ManagerName:  g.Manager.Name,
			ManagerEmail: g.Manager.Email,
			Leaves:       ToResponseList(g.Leaves),
		})
	}
	return responses
}
