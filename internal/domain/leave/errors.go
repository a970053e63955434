package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrInvalidLeaveStatus    = errors.New("status must be APPROVED or REJECTED")
	ErrInvalidLeaveType      = errors.New("leave type must be SICK, CASUAL or EARNED")
	ErrLeaveBalanceNotFound  = errors.New("leave balance not found")
)
