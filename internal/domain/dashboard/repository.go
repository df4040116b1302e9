package dashboard

import "context"

// DashboardRepository - count queries backing the admin summary
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (total int64, suspended int64, err error)
	CountPendingLeaveRequests(ctx context.Context) (int64, error)
	CountUnassignedEquipment(ctx context.Context) (int64, error)
}
