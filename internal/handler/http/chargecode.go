package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/chargecode"
	"github.com/naxrita/hrms-backend-go/internal/handler/http/response"
)

type ChargeCodeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	AllAssignments(w http.ResponseWriter, r *http.Request)
	RemoveAssignment(w http.ResponseWriter, r *http.Request)
}

type ChargeCodeHandlerImpl struct {
	chargeCodeService chargecode.ChargeCodeService
}

func NewChargeCodeHandler(chargeCodeService chargecode.ChargeCodeService) ChargeCodeHandler {
	return &ChargeCodeHandlerImpl{chargeCodeService: chargeCodeService}
}

// Create implements ChargeCodeHandler.
func (c *ChargeCodeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq chargecode.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create charge code decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	code, err := c.chargeCodeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create charge code service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, chargecode.ToResponse(code))
}

// All implements ChargeCodeHandler.
func (c *ChargeCodeHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	codes, err := c.chargeCodeService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("All charge codes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, chargecode.ToResponseList(codes))
}

// Update implements ChargeCodeHandler.
func (c *ChargeCodeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq chargecode.UpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update charge code decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	code, err := c.chargeCodeService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update charge code service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, chargecode.ToResponse(code))
}

// Delete implements ChargeCodeHandler.
func (c *ChargeCodeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.chargeCodeService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete charge code service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Charge code deleted successfully")
}

// Assign implements ChargeCodeHandler.
func (c *ChargeCodeHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq chargecode.AssignRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("Assign charge code decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	assignments, err := c.chargeCodeService.Assign(r.Context(), assignReq)
	if err != nil {
		slog.Error("Assign charge code service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, chargecode.ToAssignmentResponseList(assignments))
}

// ListByEmployee implements ChargeCodeHandler.
func (c *ChargeCodeHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	activeOnly := r.URL.Query().Get("active_only") != "false"

	assignments, err := c.chargeCodeService.ListByEmployee(r.Context(), employeeID, activeOnly)
	if err != nil {
		slog.Error("ListByEmployee charge codes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, chargecode.ToAssignmentResponseList(assignments))
}

// AllAssignments implements ChargeCodeHandler.
func (c *ChargeCodeHandlerImpl) AllAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := c.chargeCodeService.ListAssignments(r.Context())
	if err != nil {
		slog.Error("AllAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, chargecode.ToAssignmentResponseList(assignments))
}

// RemoveAssignment implements ChargeCodeHandler.
func (c *ChargeCodeHandlerImpl) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.chargeCodeService.RemoveAssignment(r.Context(), id); err != nil {
		slog.Error("RemoveAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Assignment removed successfully")
}
