package leave

import (
	"context"
)

type LeaveService interface {
	// Type
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveType, error)
	// Balance
	CreateDefaultBalances(ctx context.Context, employeeID string) error
	ListBalances(ctx context.Context, employeeID string) ([]BalanceSummary, error)
	GetBalanceTotals(ctx context.Context, employeeID string) (BalanceTotalsResponse, error)
	// Request
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, requestID string) (LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	ListMyLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, requestID string) error
	RejectLeaveRequest(ctx context.Context, requestID string) error
	ResetLeaveRequestToPending(ctx context.Context, requestID string) error
	DeleteLeaveRequest(ctx context.Context, requestID string) error
}
