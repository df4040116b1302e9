package postgresql

import (
	"context"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// CreateDefault implements leave.LeaveBalanceRepository.
// ON CONFLICT DO NOTHING keeps re-invocation safe: an existing balance for the
// (employee, type) pair is never reset.
func (r *leaveBalanceRepositoryImpl) CreateDefault(ctx context.Context, employeeID, leaveTypeID string, defaultDays int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, employee_id, leave_type_id, remaining_days)
		VALUES (uuidv7(), $1, $2, $3)
		ON CONFLICT (employee_id, leave_type_id) DO NOTHING
	`

	_, err := q.Exec(ctx, query, employeeID, leaveTypeID, defaultDays)
	return err
}

// GetByEmployeeAndType implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.remaining_days,
			   lb.created_at, lb.updated_at,
			   lt.name AS leave_type_name, lt.default_days
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
		WHERE lb.employee_id = $1 AND lb.leave_type_id = $2
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID).Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID, &balance.RemainingDays,
		&balance.CreatedAt, &balance.UpdatedAt,
		&balance.LeaveTypeName, &balance.DefaultDays,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// GetForUpdate implements leave.LeaveBalanceRepository. The FOR UPDATE OF lb
// lock holds until the enclosing transaction commits, so concurrent debits of
// the same balance serialize.
func (r *leaveBalanceRepositoryImpl) GetForUpdate(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.remaining_days,
			   lb.created_at, lb.updated_at,
			   lt.name AS leave_type_name, lt.default_days
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
		WHERE lb.employee_id = $1 AND lb.leave_type_id = $2
		FOR UPDATE OF lb
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID).Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID, &balance.RemainingDays,
		&balance.CreatedAt, &balance.UpdatedAt,
		&balance.LeaveTypeName, &balance.DefaultDays,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// SetRemainingDays implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) SetRemainingDays(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET remaining_days = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, days, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

// ListByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.remaining_days,
			   lb.created_at, lb.updated_at,
			   lt.name AS leave_type_name, lt.default_days
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
		WHERE lb.employee_id = $1
		ORDER BY lt.name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var balance leave.LeaveBalance
		if err := rows.Scan(
			&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID, &balance.RemainingDays,
			&balance.CreatedAt, &balance.UpdatedAt,
			&balance.LeaveTypeName, &balance.DefaultDays,
		); err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

// SumByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) SumByEmployee(ctx context.Context, employeeID string) (leave.BalanceTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(lb.remaining_days), 0),
			   COALESCE(SUM(lt.default_days), 0)
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
		WHERE lb.employee_id = $1
	`

	var totals leave.BalanceTotals
	err := q.QueryRow(ctx, query, employeeID).Scan(&totals.RemainingDays, &totals.TotalDays)
	if err != nil {
		return leave.BalanceTotals{}, err
	}

	return totals, nil
}
