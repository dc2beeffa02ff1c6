package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/leave"
	"github.com/naxrita/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	PendingGrouped(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	AccrueMonthly(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	balance, err := l.leaveService.GetBalance(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leave.ToBalanceResponse(balance))
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var applyReq leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	request, err := l.leaveService.Apply(r.Context(), applyReq)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, leave.ToResponse(request))
}

// Pending implements LeaveHandler.
func (l *LeaveHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	managerEmail := chi.URLParam(r, "managerEmail")

	requests, err := l.leaveService.PendingByManager(r.Context(), managerEmail)
	if err != nil {
		slog.Error("Pending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leave.ToResponseList(requests))
}

// PendingGrouped implements LeaveHandler.
func (l *LeaveHandlerImpl) PendingGrouped(w http.ResponseWriter, r *http.Request) {
	groups, err := l.leaveService.GroupPendingByManager(r.Context())
	if err != nil {
		slog.Error("PendingGrouped service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leave.ToGroupResponseList(groups))
}

// History implements LeaveHandler.
func (l *LeaveHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	requests, err := l.leaveService.History(r.Context(), employeeID)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leave.ToResponseList(requests))
}

// All implements LeaveHandler.
func (l *LeaveHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.All(r.Context())
	if err != nil {
		slog.Error("All leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leave.ToResponseList(requests))
}

// UpdateStatus implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var updateReq leave.UpdateLeaveStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	request, err := l.leaveService.UpdateStatus(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, leave.ToResponse(request))
}

// AccrueMonthly implements LeaveHandler.
func (l *LeaveHandlerImpl) AccrueMonthly(w http.ResponseWriter, r *http.Request) {
	updated, err := l.leaveService.AccrueMonthly(r.Context())
	if err != nil {
		slog.Error("AccrueMonthly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Message(w, http.StatusOK, fmt.Sprintf("Monthly accrual completed for %d employees", updated))
}
