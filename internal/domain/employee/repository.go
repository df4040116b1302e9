package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	SetSuspended(ctx context.Context, id string, suspended bool) error
	Delete(ctx context.Context, id string) error
}
