package leave

import (
	"context"
	"testing"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRequestRepo struct {
	createFn         func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error)
	getByIDFn        func(ctx context.Context, id string) (leave.LeaveRequest, error)
	listByEmployeeFn func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
	listFn           func(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error)
	updateStatusFn   func(ctx context.Context, id string, status leave.LeaveRequestStatus) error
	deleteFn         func(ctx context.Context, id string) error
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	return f.createFn(ctx, request)
}
func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeLeaveRequestRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return f.listByEmployeeFn(ctx, employeeID)
}
func (f *fakeLeaveRequestRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return f.listFn(ctx, filter)
}
func (f *fakeLeaveRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
	return f.updateStatusFn(ctx, id, status)
}
func (f *fakeLeaveRequestRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestRequestService_Create_StartsPending(t *testing.T) {
	ctx := context.Background()

	var created leave.LeaveRequest
	requestRepo := &fakeLeaveRequestRepo{
		createFn: func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
			created = request
			created.ID = "req-1"
			return created, nil
		},
	}

	svc := NewRequestService(nil, requestRepo, nil)
	result, err := svc.Create(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "annual",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-04",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusPending, result.Status)
	assert.Equal(t, 3, result.DurationDays())
}

func TestRequestService_Approve_DebitsInclusiveDuration(t *testing.T) {
	ctx := context.Background()

	var updatedStatus leave.LeaveRequestStatus
	requestRepo := &fakeLeaveRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{
				ID:          id,
				EmployeeID:  "emp-1",
				LeaveTypeID: "annual",
				StartDate:   day("2025-06-02"),
				EndDate:     day("2025-06-04"),
				Status:      leave.LeaveRequestStatusPending,
			}, nil
		},
		updateStatusFn: func(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
			updatedStatus = status
			return nil
		},
	}

	var savedDays int
	balanceRepo := &fakeLeaveBalanceRepo{
		getForUpdateFn: func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{ID: "bal-1", RemainingDays: 5}, nil
		},
		setRemainingDaysFn: func(ctx context.Context, id string, days int) error {
			savedDays = days
			return nil
		},
	}

	svc := NewRequestService(nil, requestRepo, NewBalanceService(&fakeLeaveTypeRepo{}, balanceRepo))
	err := svc.approve(ctx, "req-1")

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, updatedStatus)
	assert.Equal(t, 2, savedDays)
}

func TestRequestService_Approve_AlreadyProcessed(t *testing.T) {
	ctx := context.Background()

	requestRepo := &fakeLeaveRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, Status: leave.LeaveRequestStatusApproved}, nil
		},
		updateStatusFn: func(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
			t.Fatal("status must not change for a processed request")
			return nil
		},
	}

	svc := NewRequestService(nil, requestRepo, NewBalanceService(&fakeLeaveTypeRepo{}, &fakeLeaveBalanceRepo{}))
	err := svc.approve(ctx, "req-1")

	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestRequestService_Reject_NeverTouchesBalance(t *testing.T) {
	ctx := context.Background()

	var updatedStatus leave.LeaveRequestStatus
	requestRepo := &fakeLeaveRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, Status: leave.LeaveRequestStatusPending}, nil
		},
		updateStatusFn: func(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
			updatedStatus = status
			return nil
		},
	}

	balanceRepo := &fakeLeaveBalanceRepo{
		getForUpdateFn: func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
			t.Fatal("rejection must not read balances")
			return leave.LeaveBalance{}, nil
		},
		setRemainingDaysFn: func(ctx context.Context, id string, days int) error {
			t.Fatal("rejection must not write balances")
			return nil
		},
	}

	svc := NewRequestService(nil, requestRepo, NewBalanceService(&fakeLeaveTypeRepo{}, balanceRepo))
	err := svc.Reject(ctx, "req-1")

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, updatedStatus)
}

func TestRequestService_ResetToPending_CreditsApprovedRequest(t *testing.T) {
	ctx := context.Background()

	var updatedStatus leave.LeaveRequestStatus
	requestRepo := &fakeLeaveRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{
				ID:          id,
				EmployeeID:  "emp-1",
				LeaveTypeID: "annual",
				StartDate:   day("2025-06-02"),
				EndDate:     day("2025-06-04"),
				Status:      leave.LeaveRequestStatusApproved,
			}, nil
		},
		updateStatusFn: func(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
			updatedStatus = status
			return nil
		},
	}

	typeRepo := &fakeLeaveTypeRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveType, error) {
			return leave.LeaveType{ID: id, DefaultDays: 20}, nil
		},
	}

	var savedDays int
	balanceRepo := &fakeLeaveBalanceRepo{
		getForUpdateFn: func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{ID: "bal-1", RemainingDays: 2}, nil
		},
		setRemainingDaysFn: func(ctx context.Context, id string, days int) error {
			savedDays = days
			return nil
		},
	}

	svc := NewRequestService(nil, requestRepo, NewBalanceService(typeRepo, balanceRepo))
	err := svc.resetToPending(ctx, "req-1")

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusPending, updatedStatus)
	assert.Equal(t, 5, savedDays)
}

func TestRequestService_ResetToPending_RejectedRequestLeavesBalanceAlone(t *testing.T) {
	ctx := context.Background()

	var updatedStatus leave.LeaveRequestStatus
	requestRepo := &fakeLeaveRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{ID: id, Status: leave.LeaveRequestStatusRejected}, nil
		},
		updateStatusFn: func(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
			updatedStatus = status
			return nil
		},
	}

	balanceRepo := &fakeLeaveBalanceRepo{
		getForUpdateFn: func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
			t.Fatal("reset of a rejected request must not read balances")
			return leave.LeaveBalance{}, nil
		},
	}

	svc := NewRequestService(nil, requestRepo, NewBalanceService(&fakeLeaveTypeRepo{}, balanceRepo))
	err := svc.resetToPending(ctx, "req-1")

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusPending, updatedStatus)
}
