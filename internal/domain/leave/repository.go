package leave

import "context"

// LeaveTypeRepository - interface for the leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
}

// LeaveBalanceRepository - interface for the leave_balances table
type LeaveBalanceRepository interface {
	// CreateDefault inserts a balance row initialized to the type's default
	// days. Re-invocation for an existing (employee, type) pair is a no-op.
	CreateDefault(ctx context.Context, employeeID, leaveTypeID string, defaultDays int) error
	GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (LeaveBalance, error)
	// GetForUpdate locks the balance row for the duration of the enclosing
	// transaction so concurrent debits cannot interleave.
	GetForUpdate(ctx context.Context, employeeID, leaveTypeID string) (LeaveBalance, error)
	SetRemainingDays(ctx context.Context, id string, days int) error
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error)
	SumByEmployee(ctx context.Context, employeeID string) (BalanceTotals, error)
}

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus) error
	Delete(ctx context.Context, id string) error
}
