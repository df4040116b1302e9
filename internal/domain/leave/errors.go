package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveTypeNotFound     = errors.New("leave type not found")
	ErrBalanceNotFound       = errors.New("leave balance not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
)
