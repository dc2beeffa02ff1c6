package timesheet

import (
	"errors"
	"strings"
)

var (
	ErrSubmissionNotFound      = errors.New("Timesheet not found")
	ErrSubmissionLocked        = errors.New("Timesheet already approved")
	ErrInvalidTransition       = errors.New("Invalid timesheet status transition")
	ErrPeriodAlreadySubmitted  = errors.New("Timesheet already exists for this period and is not in draft status")
	ErrRejectionReasonRequired = errors.New("Rejection reason is mandatory")
	ErrLeaveNotApproved        = errors.New("No approved leave found for this date")
	ErrValidationFailed        = errors.New("Timesheet validation failed")
)

// ValidationFailure wraps a failed grid validation as an error carrying
// every collected message.
func ValidationFailure(result ValidationResult) error {
	return &ValidationFailedError{Errors: result.Errors}
}

type ValidationFailedError struct {
	Errors []string
}

func (e *ValidationFailedError) Error() string {
	return strings.Join(e.Errors, "; ")
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}
