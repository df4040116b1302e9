package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
)

// BalanceService owns every read and write of leave_balances. Arithmetic is
// saturating: a balance never drops below zero and never climbs above the
// default day count of its leave type.
type BalanceService struct {
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
}

func NewBalanceService(leaveTypeRepository leave.LeaveTypeRepository, leaveBalanceRepository leave.LeaveBalanceRepository) *BalanceService {
	return &BalanceService{
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
	}
}

// CreateDefaultBalances seeds one balance per leave type for the employee,
// each initialized to the type's default days. Types the employee already has
// a balance for are left untouched, so the call is safe to repeat.
func (b *BalanceService) CreateDefaultBalances(ctx context.Context, employeeID string) error {
	leaveTypes, err := b.LeaveTypeRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leave types: %w", err)
	}

	for _, leaveType := range leaveTypes {
		if err := b.LeaveBalanceRepository.CreateDefault(ctx, employeeID, leaveType.ID, leaveType.DefaultDays); err != nil {
			return fmt.Errorf("failed to create default balance for leave type %s: %w", leaveType.ID, err)
		}
	}

	slog.Debug("seeded default leave balances", "employee_id", employeeID, "types", len(leaveTypes))
	return nil
}

// Subtract debits days from the employee's balance for the leave type,
// clamping at zero. Callers run it inside a transaction; the row lock taken
// by GetForUpdate serializes concurrent debits of the same balance.
func (b *BalanceService) Subtract(ctx context.Context, employeeID, leaveTypeID string, days int) error {
	balance, err := b.LeaveBalanceRepository.GetForUpdate(ctx, employeeID, leaveTypeID)
	if err != nil {
		return err
	}

	remaining := balance.RemainingDays - days
	if remaining < 0 {
		remaining = 0
	}

	return b.LeaveBalanceRepository.SetRemainingDays(ctx, balance.ID, remaining)
}

// Add credits days back to the employee's balance for the leave type,
// clamping at the type's default days. Same locking contract as Subtract.
func (b *BalanceService) Add(ctx context.Context, employeeID, leaveTypeID string, days int) error {
	balance, err := b.LeaveBalanceRepository.GetForUpdate(ctx, employeeID, leaveTypeID)
	if err != nil {
		return err
	}

	leaveType, err := b.LeaveTypeRepository.GetByID(ctx, leaveTypeID)
	if err != nil {
		return err
	}

	remaining := balance.RemainingDays + days
	if remaining > leaveType.DefaultDays {
		remaining = leaveType.DefaultDays
	}

	return b.LeaveBalanceRepository.SetRemainingDays(ctx, balance.ID, remaining)
}

// ListBalances returns the employee's per-type balances.
func (b *BalanceService) ListBalances(ctx context.Context, employeeID string) ([]leave.BalanceSummary, error) {
	balances, err := b.LeaveBalanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}

	summaries := make([]leave.BalanceSummary, 0, len(balances))
	for _, balance := range balances {
		summary := leave.BalanceSummary{
			LeaveTypeID:   balance.LeaveTypeID,
			RemainingDays: balance.RemainingDays,
		}
		if balance.LeaveTypeName != nil {
			summary.LeaveTypeName = *balance.LeaveTypeName
		}
		if balance.DefaultDays != nil {
			summary.DefaultDays = *balance.DefaultDays
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// GetBalanceTotals sums the employee's balances across leave types.
func (b *BalanceService) GetBalanceTotals(ctx context.Context, employeeID string) (leave.BalanceTotalsResponse, error) {
	totals, err := b.LeaveBalanceRepository.SumByEmployee(ctx, employeeID)
	if err != nil {
		return leave.BalanceTotalsResponse{}, fmt.Errorf("failed to sum leave balances: %w", err)
	}

	return leave.BalanceTotalsResponse{
		RemainingDays: totals.RemainingDays,
		TotalDays:     totals.TotalDays,
	}, nil
}
