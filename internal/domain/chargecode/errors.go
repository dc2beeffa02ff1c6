package chargecode

import "errors"

var (
	ErrChargeCodeNotFound     = errors.New("charge code not found")
	ErrChargeCodeExists       = errors.New("charge code already exists")
	ErrChargeCodeInUse        = errors.New("charge code is assigned to employees")
	ErrAssignmentNotFound     = errors.New("charge code assignment not found")
	ErrAssignPermissionDenied = errors.New("only admins or managers can assign charge codes")
)
