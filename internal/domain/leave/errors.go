package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrBalanceNotFound              = errors.New("Leave balance not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrInsufficientBalance          = errors.New("Insufficient leave balance")
	ErrPastDate                     = errors.New("Leave cannot be applied for past dates")
	ErrSickLeaveWindow              = errors.New("Sick leave can only be applied for today or tomorrow")
)
