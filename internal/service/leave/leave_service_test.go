package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naxrita/hrms-backend-go/internal/domain/leave"
	"github.com/naxrita/hrms-backend-go/internal/domain/notification"
	"github.com/naxrita/hrms-backend-go/internal/domain/user"
	"github.com/naxrita/hrms-backend-go/internal/pkg/database"
)

// ===== In-memory fakes =====

type fakeRequestRepo struct {
	requests  map[string]leave.LeaveRequest
	nextID    int
	decisions []leave.LeaveDecision
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]leave.LeaveRequest{}}
}

func (r *fakeRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.nextID++
	request.ID = fmt.Sprintf("lr-%d", r.nextID)
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *fakeRequestRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if lr.EmployeeID == employeeID {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListAll(_ context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		out = append(out, lr)
	}
	return out, nil
}

func (r *fakeRequestRepo) ListPendingByEmployeeIDs(_ context.Context, ids []string) ([]leave.LeaveRequest, error) {
	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if lr.Status == leave.LeaveStatusPending && idSet[lr.EmployeeID] {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateDecision(_ context.Context, decision leave.LeaveDecision) error {
	request, ok := r.requests[decision.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	request.Status = decision.Status
	request.RejectionReason = decision.RejectionReason
	request.ApprovalNote = decision.ApprovalNote
	request.ApprovedBy = decision.ApprovedBy
	decidedOn := decision.DecidedOn
	request.DecidedOn = &decidedOn
	r.requests[decision.ID] = request
	r.decisions = append(r.decisions, decision)
	return nil
}

type fakeBalanceRepo struct {
	balances map[string]leave.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: map[string]leave.LeaveBalance{}}
}

func (r *fakeBalanceRepo) GetByEmployee(_ context.Context, employeeID string) (leave.LeaveBalance, error) {
	balance, ok := r.balances[employeeID]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return balance, nil
}

func (r *fakeBalanceRepo) Upsert(_ context.Context, balance leave.LeaveBalance) error {
	r.balances[balance.EmployeeID] = balance
	return nil
}

func (r *fakeBalanceRepo) ListAll(_ context.Context) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for _, b := range r.balances {
		out = append(out, b)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByManagerEmail(_ context.Context, managerEmail string) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		if u.ManagerEmail == managerEmail {
			out = append(out, u)
		}
	}
	return out, nil
}

type recordedNotification struct {
	userID    string
	notifType notification.Type
	message   string
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (n *fakeNotifier) Notify(_ context.Context, userID string, notifType notification.Type, message string, _ string) {
	n.sent = append(n.sent, recordedNotification{userID: userID, notifType: notifType, message: message})
}

type fakeTx struct{}

func (fakeTx) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ===== Fixtures =====

var testNow = time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)

func newTestService(users ...user.User) (*LeaveService, *fakeRequestRepo, *fakeBalanceRepo, *fakeNotifier) {
	requestRepo := newFakeRequestRepo()
	balanceRepo := newFakeBalanceRepo()
	notifier := &fakeNotifier{}
	svc := NewLeaveService(requestRepo, balanceRepo, newFakeUserRepo(users...), notifier, fakeTx{})
	svc.now = func() time.Time { return testNow }
	return svc, requestRepo, balanceRepo, notifier
}

func testEmployee() user.User {
	return user.User{
		ID:           "emp-1",
		Name:         "Asha Rao",
		Email:        "asha@naxrita.com",
		ManagerEmail: "meera@naxrita.com",
		Designation:  "Engineer",
		Department:   "Platform",
		Role:         user.RoleEmployee,
		JoinedOn:     time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
	}
}

func testManager() user.User {
	return user.User{
		ID:    "mgr-1",
		Name:  "Meera Iyer",
		Email: "meera@naxrita.com",
		Role:  user.RoleManager,
	}
}

// ===== GetBalance =====

func TestLeaveService_GetBalance_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, _ := newTestService(testEmployee())

	balance, err := svc.GetBalance(ctx, "emp-1")

	require.NoError(t, err)
	assert.Equal(t, 6.0, balance.Casual)
	assert.Equal(t, 6.0, balance.Sick)
	assert.Equal(t, 12.0, balance.Earned)
	assert.Equal(t, 0.0, balance.LWP)

	stored, ok := balanceRepo.balances["emp-1"]
	require.True(t, ok, "default balance should be persisted")
	assert.Equal(t, balance, stored)
}

func TestLeaveService_GetBalance_UnknownEmployee(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetBalance(context.Background(), "missing")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

// ===== Apply =====

func TestLeaveService_Apply_Success(t *testing.T) {
	ctx := context.Background()
	svc, _, _, notifier := newTestService(testEmployee(), testManager())

	created, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		StartDate:  "2026-08-20",
		EndDate:    "2026-08-21",
		Reason:     "family function",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusPending, created.Status)
	assert.Equal(t, 2.0, created.Days)
	assert.Equal(t, "Asha Rao", created.EmployeeName)
	assert.Equal(t, "Platform", created.EmployeeDepartment)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "mgr-1", notifier.sent[0].userID)
	assert.Equal(t, notification.TypeLeaveRequest, notifier.sent[0].notifType)
}

func TestLeaveService_Apply_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, _ := newTestService(testEmployee())
	balanceRepo.balances["emp-1"] = leave.LeaveBalance{EmployeeID: "emp-1", Casual: 1}

	_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		StartDate:  "2026-08-20",
		EndDate:    "2026-08-22",
		Reason:     "trip",
	})

	require.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "Available: 1")
	assert.Contains(t, err.Error(), "Requested: 3")
}

func TestLeaveService_Apply_PastDateRejected(t *testing.T) {
	svc, _, _, _ := newTestService(testEmployee())

	_, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-02",
		Reason:     "late filing",
	})

	assert.ErrorIs(t, err, leave.ErrPastDate)
}

func TestLeaveService_Apply_SickLeaveWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"today", "2026-08-10", "2026-08-10", false},
		{"tomorrow", "2026-08-11", "2026-08-11", false},
		{"yesterday", "2026-08-09", "2026-08-09", true},
		{"day after tomorrow", "2026-08-12", "2026-08-12", true},
		{"end beyond tomorrow", "2026-08-10", "2026-08-12", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService(testEmployee())

			_, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
				EmployeeID: "emp-1",
				LeaveType:  "Sick",
				StartDate:  tt.start,
				EndDate:    tt.end,
				Reason:     "fever",
			})

			if tt.wantErr {
				assert.ErrorIs(t, err, leave.ErrSickLeaveWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLeaveService_Apply_LWPSkipsBalanceCheck(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, _ := newTestService(testEmployee())
	balanceRepo.balances["emp-1"] = leave.LeaveBalance{EmployeeID: "emp-1"}

	created, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "LWP",
		StartDate:  "2026-08-20",
		EndDate:    "2026-08-24",
		Reason:     "unpaid time off",
	})

	require.NoError(t, err)
	assert.Equal(t, 5.0, created.Days)
}

// ===== UpdateStatus =====

func pendingRequest(t *testing.T, svc *LeaveService, leaveType, start, end string) leave.LeaveRequest {
	t.Helper()
	created, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     "test",
	})
	require.NoError(t, err)
	return created
}

func TestLeaveService_UpdateStatus_ApproveDeductsBalance(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, notifier := newTestService(testEmployee(), testManager())
	created := pendingRequest(t, svc, "Casual", "2026-08-20", "2026-08-21")
	notifier.sent = nil

	updated, err := svc.UpdateStatus(ctx, leave.UpdateLeaveStatusRequest{
		ID:         created.ID,
		Status:     "Approved",
		ApprovedBy: "Meera Iyer",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "Meera Iyer", *updated.ApprovedBy)

	balance := balanceRepo.balances["emp-1"]
	assert.Equal(t, 4.0, balance.Casual)
	assert.Equal(t, 0.0, balance.LWP)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "emp-1", notifier.sent[0].userID)
	assert.Equal(t, notification.TypeLeaveApproved, notifier.sent[0].notifType)
}

func TestLeaveService_UpdateStatus_ShortfallOverflowsToLWP(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, _ := newTestService(testEmployee(), testManager())
	created := pendingRequest(t, svc, "Casual", "2026-08-20", "2026-08-22")

	// Balance drained between apply and approval.
	balanceRepo.balances["emp-1"] = leave.LeaveBalance{EmployeeID: "emp-1", Casual: 1}

	_, err := svc.UpdateStatus(ctx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: "Approved",
	})

	require.NoError(t, err)
	balance := balanceRepo.balances["emp-1"]
	assert.Equal(t, 1.0, balance.Casual, "paid balance untouched on shortfall")
	assert.Equal(t, 3.0, balance.LWP, "entire day count overflows to LWP")
}

func TestLeaveService_UpdateStatus_RejectRequiresReason(t *testing.T) {
	ctx := context.Background()
	svc, requestRepo, _, _ := newTestService(testEmployee(), testManager())
	created := pendingRequest(t, svc, "Casual", "2026-08-20", "2026-08-21")

	_, err := svc.UpdateStatus(ctx, leave.UpdateLeaveStatusRequest{
		ID:              created.ID,
		Status:          "Rejected",
		RejectionReason: "   ",
	})

	require.Error(t, err)
	assert.Empty(t, requestRepo.decisions, "no decision persisted when validation fails")

	stored := requestRepo.requests[created.ID]
	assert.Equal(t, leave.LeaveStatusPending, stored.Status)
}

func TestLeaveService_UpdateStatus_RejectWithReason(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, notifier := newTestService(testEmployee(), testManager())
	created := pendingRequest(t, svc, "Casual", "2026-08-20", "2026-08-21")
	notifier.sent = nil
	before := balanceRepo.balances["emp-1"]

	updated, err := svc.UpdateStatus(ctx, leave.UpdateLeaveStatusRequest{
		ID:              created.ID,
		Status:          "Rejected",
		RejectionReason: "team at capacity",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusRejected, updated.Status)
	require.NotNil(t, updated.RejectionReason)
	assert.Equal(t, "team at capacity", *updated.RejectionReason)
	assert.Equal(t, before, balanceRepo.balances["emp-1"], "rejection never touches balance")

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notification.TypeLeaveRejected, notifier.sent[0].notifType)
	assert.Contains(t, notifier.sent[0].message, "team at capacity")
}

func TestLeaveService_UpdateStatus_TerminalStates(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(testEmployee(), testManager())
	created := pendingRequest(t, svc, "Casual", "2026-08-20", "2026-08-21")

	_, err := svc.UpdateStatus(ctx, leave.UpdateLeaveStatusRequest{ID: created.ID, Status: "Approved"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, leave.UpdateLeaveStatusRequest{
		ID:              created.ID,
		Status:          "Rejected",
		RejectionReason: "changed my mind",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

// ===== PendingByManager =====

func TestLeaveService_PendingByManager(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(testEmployee(), testManager())
	pendingRequest(t, svc, "Casual", "2026-08-20", "2026-08-21")

	requests, err := svc.PendingByManager(ctx, "meera@naxrita.com")
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	requests, err = svc.PendingByManager(ctx, "nobody@naxrita.com")
	require.NoError(t, err)
	assert.Empty(t, requests)
}

// ===== AccrueMonthly =====

func TestLeaveService_AccrueMonthly(t *testing.T) {
	ctx := context.Background()

	earlyJoiner := testEmployee()
	lateJoiner := user.User{
		ID:       "emp-2",
		Name:     "Dev Patel",
		Email:    "dev@naxrita.com",
		JoinedOn: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
	}

	svc, _, balanceRepo, _ := newTestService(earlyJoiner, lateJoiner)
	balanceRepo.balances["emp-1"] = leave.LeaveBalance{EmployeeID: "emp-1", Earned: 11.5, Sick: 2}

	updated, err := svc.AccrueMonthly(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, updated, "employee joined after the 15th is skipped")

	balance := balanceRepo.balances["emp-1"]
	assert.Equal(t, 12.0, balance.Earned, "earned accrual capped at 12")
	assert.Equal(t, 2.5, balance.Sick)
	require.NotNil(t, balance.LastAccrualAt)

	_, ok := balanceRepo.balances["emp-2"]
	assert.False(t, ok)
}

func TestLeaveService_AccrueMonthly_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, _ := newTestService(testEmployee())

	updated, err := svc.AccrueMonthly(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, updated)
	first := balanceRepo.balances["emp-1"]

	updated, err = svc.AccrueMonthly(ctx)
	require.NoError(t, err)
	assert.Zero(t, updated, "second run in the same month credits nothing")
	assert.Equal(t, first, balanceRepo.balances["emp-1"])
}

// ===== GroupPendingByManager =====

func TestLeaveService_GroupPendingByManager_PlaceholderManager(t *testing.T) {
	ctx := context.Background()
	// No user record exists for the manager email.
	svc, _, _, _ := newTestService(testEmployee())
	pendingRequest(t, svc, "Casual", "2026-08-20", "2026-08-21")

	groups, err := svc.GroupPendingByManager(ctx)

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Unknown Manager", groups[0].Manager.Name)
	assert.Equal(t, "meera@naxrita.com", groups[0].Manager.Email)
	require.Len(t, groups[0].Leaves, 1)
	assert.Equal(t, "Asha Rao", groups[0].Leaves[0].EmployeeName)
}

// sanity check that fakes satisfy the interfaces
var (
	_ leave.LeaveRequestRepository = (*fakeRequestRepo)(nil)
	_ leave.LeaveBalanceRepository = (*fakeBalanceRepo)(nil)
	_ user.UserRepository          = (*fakeUserRepo)(nil)
	_ Notifier                     = (*fakeNotifier)(nil)
	_ database.Transactor          = fakeTx{}
)
