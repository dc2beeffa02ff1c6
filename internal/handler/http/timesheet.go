package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/timesheet"
	"github.com/naxrita/hrms-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
	PopulateHolidays(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Create implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var submitReq timesheet.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Create timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	submission, err := t.timesheetService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Create timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, timesheet.ToResponse(submission))
}

// ListByEmployee implements TimesheetHandler.
func (t *TimesheetHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	submissions, err := t.timesheetService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListByEmployee timesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, timesheet.ToResponseList(submissions))
}

// All implements TimesheetHandler.
func (t *TimesheetHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.SubmissionFilter{EmployeeID: r.URL.Query().Get("employee_id")}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := timesheet.ParseStatus(raw)
		if !ok {
			response.BadRequest(w, "Invalid status filter")
			return
		}
		filter.Status = status
	}

	submissions, err := t.timesheetService.All(r.Context(), filter)
	if err != nil {
		slog.Error("All timesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, timesheet.ToResponseList(submissions))
}

// Pending implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	managerEmail := chi.URLParam(r, "managerEmail")

	submissions, err := t.timesheetService.PendingByManager(r.Context(), managerEmail)
	if err != nil {
		slog.Error("Pending timesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, timesheet.ToResponseList(submissions))
}

// Approve implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	decisionReq, ok := t.decodeDecision(w, r)
	if !ok {
		return
	}

	submission, err := t.timesheetService.Approve(r.Context(), decisionReq)
	if err != nil {
		slog.Error("Approve timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, timesheet.ToResponse(submission))
}

// Reject implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	decisionReq, ok := t.decodeDecision(w, r)
	if !ok {
		return
	}

	submission, err := t.timesheetService.Reject(r.Context(), decisionReq)
	if err != nil {
		slog.Error("Reject timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, timesheet.ToResponse(submission))
}

// Reopen implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Reopen(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	submission, err := t.timesheetService.Reopen(r.Context(), id)
	if err != nil {
		slog.Error("Reopen timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, timesheet.ToResponse(submission))
}

// PopulateHolidays implements TimesheetHandler.
func (t *TimesheetHandlerImpl) PopulateHolidays(w http.ResponseWriter, r *http.Request) {
	var periodReq struct {
		PeriodStart string `json:"period_start"`
		PeriodEnd   string `json:"period_end"`
	}

	if err := json.NewDecoder(r.Body).Decode(&periodReq); err != nil {
		slog.Error("PopulateHolidays decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	entries, err := t.timesheetService.HolidayEntries(r.Context(), periodReq.PeriodStart, periodReq.PeriodEnd)
	if err != nil {
		slog.Error("PopulateHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, entries)
}

// Decision bodies are optional on approvals and carry the reason on
// rejections. The submission ID always comes from the path.
func (t *TimesheetHandlerImpl) decodeDecision(w http.ResponseWriter, r *http.Request) (timesheet.DecisionRequest, bool) {
	var decisionReq timesheet.DecisionRequest

	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&decisionReq); err != nil {
			slog.Error("Decision decode error", "error", err)
			response.BadRequest(w, "Invalid request format")
			return timesheet.DecisionRequest{}, false
		}
	}
	decisionReq.ID = chi.URLParam(r, "id")

	return decisionReq, true
}
