package postgresql

import (
	"context"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/dashboard"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE is_suspended)
		FROM employees
	`

	var total, suspended int64
	if err := q.QueryRow(ctx, query).Scan(&total, &suspended); err != nil {
		return 0, 0, err
	}
	return total, suspended, nil
}

// CountPendingLeaveRequests implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaveRequests(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountUnassignedEquipment implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountUnassignedEquipment(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM equipment_items WHERE employee_id IS NULL`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
