package timesheet

import (
	"strings"

	"github.com/naxrita/hrms-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID  string  `json:"employee_id"`
	PeriodLabel string  `json:"period_label"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Rows        []Row   `json:"rows"`
	TotalHours  float64 `json:"total_hours"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start is required"})
	} else if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end is required"})
	} else if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be YYYY-MM-DD"})
	}
	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "rows must not be empty"})
	}
	badDate, badHours := false, false
	for _, row := range r.Rows {
		for _, e := range row.Entries {
			if _, ok := validator.IsValidDate(e.Date); !ok {
				badDate = true
			}
			if !validator.IsValidHours(e.Hours) {
				badHours = true
			}
		}
	}
	if badDate {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "entry dates must be YYYY-MM-DD"})
	}
	if badHours {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "hours must be between 0 and 24 in half-hour steps"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionRequest struct {
	ID              string `json:"-"`
	RejectionReason string `json:"rejection_reason"`
	DecidedBy       string `json:"decided_by"`
}

// ValidateRejection requires a non-blank reason; approvals carry none.
func (r DecisionRequest) ValidateRejection() error {
	if strings.TrimSpace(r.RejectionReason) == "" {
		return ErrRejectionReasonRequired
	}
	return nil
}

// HolidayEntry is a pre-filled holiday cell for the editing grid.
type HolidayEntry struct {
	Date        string  `json:"date"`
	HolidayName string  `json:"holiday_name"`
	Hours       float64 `json:"hours"`
}

type SubmissionResponse struct {
	ID              string  `json:"_id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	EmployeeEmail   string  `json:"employee_email,omitempty"`
	PeriodLabel     string  `json:"period_label"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
	Rows            []Row   `json:"rows"`
	TotalHours      float64 `json:"total_hours"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}

func ToResponse(s *Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		EmployeeEmail:   s.EmployeeEmail,
		PeriodLabel:     s.PeriodLabel,
		PeriodStart:     s.PeriodStart,
		PeriodEnd:       s.PeriodEnd,
		Rows:            s.Rows,
		TotalHours:      s.TotalHours,
		Status:          string(s.Status),
		RejectionReason: s.RejectionReason,
		DecidedBy:       s.DecidedBy,
		SubmittedAt:     s.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToResponseList(subs []Submission) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, ToResponse(&subs[i]))
	}
	return out
}
