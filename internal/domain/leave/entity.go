package leave

import "time"

type LeaveType string

const (
	LeaveTypeCasual LeaveType = "Casual"
	LeaveTypeSick   LeaveType = "Sick"
	LeaveTypeEarned LeaveType = "Earned"
	LeaveTypeLWP    LeaveType = "LWP"
)

// ParseLeaveType rejects values outside the closed leave type set.
func ParseLeaveType(s string) (LeaveType, bool) {
	switch LeaveType(s) {
	case LeaveTypeCasual, LeaveTypeSick, LeaveTypeEarned, LeaveTypeLWP:
		return LeaveType(s), true
	}
	return "", false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// ParseLeaveStatus rejects values outside the closed status set.
func ParseLeaveStatus(s string) (LeaveStatus, bool) {
	switch LeaveStatus(s) {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return LeaveStatus(s), true
	}
	return "", false
}

// Terminal reports whether no further transition is allowed.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// CanTransition reports whether the status machine permits moving to
// target. Approved and Rejected are terminal.
func (s LeaveStatus) CanTransition(target LeaveStatus) bool {
	return s == LeaveStatusPending &&
		(target == LeaveStatusApproved || target == LeaveStatusRejected)
}

// LeaveRequest entity. The Employee* fields are denormalized display
// fields so list views render without a join.
type LeaveRequest struct {
	ID         string
	EmployeeID string

	EmployeeName        string
	EmployeeEmail       string
	EmployeeDesignation string
	EmployeeDepartment  string

	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Days      float64
	Reason    string

	Status          LeaveStatus
	RejectionReason *string
	ApprovalNote    *string
	ApprovedBy      *string

	AppliedOn time.Time
	DecidedOn *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveBalance holds per-employee counters. Recomputed server-side only:
// deducted on approval, credited by monthly accrual.
type LeaveBalance struct {
	EmployeeID string
	Casual     float64
	Sick       float64
	Earned     float64
	LWP        float64

	LastAccrualAt *time.Time
	UpdatedAt     time.Time
}

// Defaults for employees without a stored balance row.
const (
	DefaultCasualBalance = 6
	DefaultSickBalance   = 6
	DefaultEarnedBalance = 12
)

// NewDefaultBalance seeds the opening balance for an employee.
func NewDefaultBalance(employeeID string) LeaveBalance {
	return LeaveBalance{
		EmployeeID: employeeID,
		Casual:     DefaultCasualBalance,
		Sick:       DefaultSickBalance,
		Earned:     DefaultEarnedBalance,
		LWP:        0,
	}
}

// Available returns the remaining balance for a leave type. LWP has no
// balance to draw from; it accumulates instead.
func (b LeaveBalance) Available(t LeaveType) float64 {
	switch t {
	case LeaveTypeCasual:
		return b.Casual
	case LeaveTypeSick:
		return b.Sick
	case LeaveTypeEarned:
		return b.Earned
	}
	return 0
}

// Deduct applies an approved leave to the balance. A shortfall on a
// paid type overflows the full day count into LWP.
func (b *LeaveBalance) Deduct(t LeaveType, days float64) {
	switch t {
	case LeaveTypeCasual:
		if b.Casual >= days {
			b.Casual -= days
			return
		}
	case LeaveTypeSick:
		if b.Sick >= days {
			b.Sick -= days
			return
		}
	case LeaveTypeEarned:
		if b.Earned >= days {
			b.Earned -= days
			return
		}
	}
	b.LWP += days
}
