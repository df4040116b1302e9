package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID          string
	Name        string
	Description *string
	DefaultDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveBalance tracks the remaining days of one leave type for one employee.
// remaining_days is always within [0, default_days] for the type.
type LeaveBalance struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	RemainingDays int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	LeaveTypeName *string
	DefaultDays   *int
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	Comment   *string

	Status LeaveRequestStatus

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	LeaveTypeName *string
	EmployeeName  *string
}

// DurationDays returns the inclusive day count of the request.
func (r LeaveRequest) DurationDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// BalanceTotals is the aggregate of an employee's balances across leave types.
type BalanceTotals struct {
	RemainingDays int
	TotalDays     int
}
