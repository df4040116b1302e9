package employee

import (
	"context"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetEmployee(ctx context.Context, id string) (Employee, error)
	GetEmployeeByUserID(ctx context.Context, userID string) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) error
	SetSuspended(ctx context.Context, id string, suspended bool) error
	DeleteEmployee(ctx context.Context, id string) error
}
