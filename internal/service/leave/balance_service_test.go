package leave

import (
	"context"
	"testing"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveTypeRepo struct {
	createFn  func(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error)
	getByIDFn func(ctx context.Context, id string) (leave.LeaveType, error)
	listFn    func(ctx context.Context) ([]leave.LeaveType, error)
}

func (f *fakeLeaveTypeRepo) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	return f.createFn(ctx, leaveType)
}
func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeLeaveTypeRepo) List(ctx context.Context) ([]leave.LeaveType, error) {
	return f.listFn(ctx)
}

type fakeLeaveBalanceRepo struct {
	createDefaultFn        func(ctx context.Context, employeeID, leaveTypeID string, defaultDays int) error
	getByEmployeeAndTypeFn func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error)
	getForUpdateFn         func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error)
	setRemainingDaysFn     func(ctx context.Context, id string, days int) error
	listByEmployeeFn       func(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error)
	sumByEmployeeFn        func(ctx context.Context, employeeID string) (leave.BalanceTotals, error)
}

func (f *fakeLeaveBalanceRepo) CreateDefault(ctx context.Context, employeeID, leaveTypeID string, defaultDays int) error {
	return f.createDefaultFn(ctx, employeeID, leaveTypeID, defaultDays)
}
func (f *fakeLeaveBalanceRepo) GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
	return f.getByEmployeeAndTypeFn(ctx, employeeID, leaveTypeID)
}
func (f *fakeLeaveBalanceRepo) GetForUpdate(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
	return f.getForUpdateFn(ctx, employeeID, leaveTypeID)
}
func (f *fakeLeaveBalanceRepo) SetRemainingDays(ctx context.Context, id string, days int) error {
	return f.setRemainingDaysFn(ctx, id, days)
}
func (f *fakeLeaveBalanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	return f.listByEmployeeFn(ctx, employeeID)
}
func (f *fakeLeaveBalanceRepo) SumByEmployee(ctx context.Context, employeeID string) (leave.BalanceTotals, error) {
	return f.sumByEmployeeFn(ctx, employeeID)
}

func TestBalanceService_CreateDefaultBalances_SeedsEveryType(t *testing.T) {
	ctx := context.Background()

	typeRepo := &fakeLeaveTypeRepo{
		listFn: func(ctx context.Context) ([]leave.LeaveType, error) {
			return []leave.LeaveType{
				{ID: "annual", DefaultDays: 20},
				{ID: "sick", DefaultDays: 10},
				{ID: "parental", DefaultDays: 90},
			}, nil
		},
	}

	seeded := map[string]int{}
	balanceRepo := &fakeLeaveBalanceRepo{
		createDefaultFn: func(ctx context.Context, employeeID, leaveTypeID string, defaultDays int) error {
			seeded[leaveTypeID] = defaultDays
			return nil
		},
	}

	svc := NewBalanceService(typeRepo, balanceRepo)
	err := svc.CreateDefaultBalances(ctx, "emp-1")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"annual": 20, "sick": 10, "parental": 90}, seeded)
}

func TestBalanceService_Subtract_DebitsRemainingDays(t *testing.T) {
	ctx := context.Background()

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

	svc := NewBalanceService(&fakeLeaveTypeRepo{}, balanceRepo)
	err := svc.Subtract(ctx, "emp-1", "annual", 3)

	require.NoError(t, err)
	assert.Equal(t, 2, savedDays)
}

func TestBalanceService_Subtract_ClampsAtZero(t *testing.T) {
	ctx := context.Background()

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

	svc := NewBalanceService(&fakeLeaveTypeRepo{}, balanceRepo)
	err := svc.Subtract(ctx, "emp-1", "annual", 7)

	require.NoError(t, err)
	assert.Equal(t, 0, savedDays)
}

func TestBalanceService_Add_CreditsRemainingDays(t *testing.T) {
	ctx := context.Background()

	typeRepo := &fakeLeaveTypeRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveType, error) {
			return leave.LeaveType{ID: id, DefaultDays: 20}, nil
		},
	}

	var savedDays int
	balanceRepo := &fakeLeaveBalanceRepo{
		getForUpdateFn: func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{ID: "bal-1", RemainingDays: 12}, nil
		},
		setRemainingDaysFn: func(ctx context.Context, id string, days int) error {
			savedDays = days
			return nil
		},
	}

	svc := NewBalanceService(typeRepo, balanceRepo)
	err := svc.Add(ctx, "emp-1", "annual", 3)

	require.NoError(t, err)
	assert.Equal(t, 15, savedDays)
}

func TestBalanceService_Add_ClampsAtDefaultDays(t *testing.T) {
	ctx := context.Background()

	typeRepo := &fakeLeaveTypeRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveType, error) {
			return leave.LeaveType{ID: id, DefaultDays: 10}, nil
		},
	}

	var savedDays int
	balanceRepo := &fakeLeaveBalanceRepo{
		getForUpdateFn: func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{ID: "bal-1", RemainingDays: 8}, nil
		},
		setRemainingDaysFn: func(ctx context.Context, id string, days int) error {
			savedDays = days
			return nil
		},
	}

	svc := NewBalanceService(typeRepo, balanceRepo)
	err := svc.Add(ctx, "emp-1", "sick", 5)

	require.NoError(t, err)
	assert.Equal(t, 10, savedDays)
}

func TestBalanceService_Add_FullBalanceStaysAtDefault(t *testing.T) {
	ctx := context.Background()

	typeRepo := &fakeLeaveTypeRepo{
		getByIDFn: func(ctx context.Context, id string) (leave.LeaveType, error) {
			return leave.LeaveType{ID: id, DefaultDays: 10}, nil
		},
	}

	var savedDays int
	balanceRepo := &fakeLeaveBalanceRepo{
		getForUpdateFn: func(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
			return leave.LeaveBalance{ID: "bal-1", RemainingDays: 10}, nil
		},
		setRemainingDaysFn: func(ctx context.Context, id string, days int) error {
			savedDays = days
			return nil
		},
	}

	svc := NewBalanceService(typeRepo, balanceRepo)
	err := svc.Add(ctx, "emp-1", "sick", 5)

	require.NoError(t, err)
	assert.Equal(t, 10, savedDays)
}

func TestBalanceService_GetBalanceTotals_SumsAcrossTypes(t *testing.T) {
	ctx := context.Background()

	balanceRepo := &fakeLeaveBalanceRepo{
		sumByEmployeeFn: func(ctx context.Context, employeeID string) (leave.BalanceTotals, error) {
			return leave.BalanceTotals{RemainingDays: 27, TotalDays: 120}, nil
		},
	}

	svc := NewBalanceService(&fakeLeaveTypeRepo{}, balanceRepo)
	totals, err := svc.GetBalanceTotals(ctx, "emp-1")

	require.NoError(t, err)
	assert.Equal(t, 27, totals.RemainingDays)
	assert.Equal(t, 120, totals.TotalDays)
}
