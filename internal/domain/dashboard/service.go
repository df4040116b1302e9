package dashboard

import (
	"context"
)

type DashboardService interface {
	GetAdminSummary(ctx context.Context, adminID string) (AdminSummary, error)
	GetEmployeeProfile(ctx context.Context, employeeID string) (EmployeeProfile, error)
}
