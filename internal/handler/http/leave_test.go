package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naxrita/hrms-backend-go/internal/domain/leave"
)

type fakeLeaveService struct {
	balance leave.LeaveBalance
	applied leave.LeaveRequest
	err     error
}

func (f *fakeLeaveService) GetBalance(_ context.Context, _ string) (leave.LeaveBalance, error) {
	return f.balance, f.err
}

func (f *fakeLeaveService) Apply(_ context.Context, _ leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	return f.applied, f.err
}

func (f *fakeLeaveService) History(_ context.Context, _ string) ([]leave.LeaveRequest, error) {
	return []leave.LeaveRequest{f.applied}, f.err
}

func (f *fakeLeaveService) All(_ context.Context) ([]leave.LeaveRequest, error) {
	return []leave.LeaveRequest{f.applied}, f.err
}

func (f *fakeLeaveService) PendingByManager(_ context.Context, _ string) ([]leave.LeaveRequest, error) {
	return []leave.LeaveRequest{f.applied}, f.err
}

func (f *fakeLeaveService) GroupPendingByManager(_ context.Context) ([]leave.ManagerGroup, error) {
	return nil, f.err
}

func (f *fakeLeaveService) UpdateStatus(_ context.Context, _ leave.UpdateLeaveStatusRequest) (leave.LeaveRequest, error) {
	return f.applied, f.err
}

func (f *fakeLeaveService) AccrueMonthly(_ context.Context) (int, error) {
	return 0, f.err
}

func leaveTestRouter(svc leave.LeaveService) *chi.Mux {
	h := NewLeaveHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/leaves/balance/{employeeId}", h.GetBalance)
	r.Post("/api/leaves/apply", h.Apply)
	r.Get("/api/leaves/history/{employeeId}", h.History)
	r.Put("/api/leaves/update_status/{id}", h.UpdateStatus)
	return r
}

func TestLeaveHandlerBalanceWireShape(t *testing.T) {
	svc := &fakeLeaveService{
		balance: leave.LeaveBalance{EmployeeID: "emp-1", Casual: 4, Sick: 5.5, Earned: 12, LWP: 1},
	}
	router := leaveTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaves/balance/emp-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]float64{"casual": 4, "sick": 5.5, "earned": 12, "lwp": 1}, body)
}

func TestLeaveHandlerApplyCreated(t *testing.T) {
	applied := leave.LeaveRequest{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		LeaveType:  leave.LeaveTypeCasual,
		StartDate:  time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
		Days:       2,
		Reason:     "Family function",
		Status:     leave.LeaveStatusPending,
		AppliedOn:  time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
	}
	router := leaveTestRouter(&fakeLeaveService{applied: applied})

	reqBody := []byte(`{"employee_id":"emp-1","leave_type":"Casual","start_date":"2026-08-12","end_date":"2026-08-13","reason":"Family function"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/leaves/apply", bytes.NewReader(reqBody)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "lr-1", body["_id"])
	assert.Equal(t, "Pending", body["status"])
	assert.Equal(t, "2026-08-12", body["start_date"])
	assert.Equal(t, 2.0, body["days"])
}

func TestLeaveHandlerApplyBadJSON(t *testing.T) {
	router := leaveTestRouter(&fakeLeaveService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/leaves/apply", bytes.NewReader([]byte("{not json"))))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request format", body["error"])
}

func TestLeaveHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"insufficient balance", leave.ErrInsufficientBalance, http.StatusBadRequest},
		{"not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound},
		{"already processed", leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := leaveTestRouter(&fakeLeaveService{err: tt.err})

			reqBody := []byte(`{"status":"Approved"}`)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/leaves/update_status/lr-1", bytes.NewReader(reqBody)))

			require.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body["error"])
		})
	}
}
