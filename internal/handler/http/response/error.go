package response

import (
	"errors"
	"net/http"

	"github.com/naxrita/hrms-backend-go/internal/domain/auth"
	"github.com/naxrita/hrms-backend-go/internal/domain/chargecode"
	"github.com/naxrita/hrms-backend-go/internal/domain/holiday"
	"github.com/naxrita/hrms-backend-go/internal/domain/leave"
	"github.com/naxrita/hrms-backend-go/internal/domain/notification"
	"github.com/naxrita/hrms-backend-go/internal/domain/timesheet"
	"github.com/naxrita/hrms-backend-go/internal/domain/user"
	"github.com/naxrita/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, auth.ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, auth.ErrTokenExpired.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, auth.ErrInvalidToken.Error())

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, user.ErrUserNotFound.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, user.ErrAdminPrivilegeRequired.Error())

	// Leaves
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, leave.ErrLeaveRequestNotFound.Error())
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, leave.ErrBalanceNotFound.Error())
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, leave.ErrLeaveRequestAlreadyProcessed.Error())
	case errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrPastDate),
		errors.Is(err, leave.ErrSickLeaveWindow):
		BadRequest(w, err.Error())

	// Timesheets
	case errors.Is(err, timesheet.ErrSubmissionNotFound):
		NotFound(w, timesheet.ErrSubmissionNotFound.Error())
	case errors.Is(err, timesheet.ErrSubmissionLocked),
		errors.Is(err, timesheet.ErrInvalidTransition),
		errors.Is(err, timesheet.ErrPeriodAlreadySubmitted):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrValidationFailed),
		errors.Is(err, timesheet.ErrLeaveNotApproved),
		errors.Is(err, timesheet.ErrRejectionReasonRequired):
		BadRequest(w, err.Error())

	// Charge codes
	case errors.Is(err, chargecode.ErrChargeCodeNotFound):
		NotFound(w, chargecode.ErrChargeCodeNotFound.Error())
	case errors.Is(err, chargecode.ErrAssignmentNotFound):
		NotFound(w, chargecode.ErrAssignmentNotFound.Error())
	case errors.Is(err, chargecode.ErrChargeCodeExists):
		Conflict(w, chargecode.ErrChargeCodeExists.Error())
	case errors.Is(err, chargecode.ErrChargeCodeInUse):
		BadRequest(w, chargecode.ErrChargeCodeInUse.Error())
	case errors.Is(err, chargecode.ErrAssignPermissionDenied):
		Forbidden(w, chargecode.ErrAssignPermissionDenied.Error())

	// Holidays and notifications
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, holiday.ErrHolidayNotFound.Error())
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, notification.ErrNotificationNotFound.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
