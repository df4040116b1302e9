package meeting

import "context"

// MeetingRepository - interface for the meetings table
type MeetingRepository interface {
	Create(ctx context.Context, m Meeting) (Meeting, error)
	GetByID(ctx context.Context, id string) (Meeting, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Meeting, error)
	ListByAdmin(ctx context.Context, adminID string) ([]Meeting, error)
	ListByAdminAndStatus(ctx context.Context, adminID string, status Status) ([]Meeting, error)
	ListByEmployeeAndStatus(ctx context.Context, employeeID string, status Status) ([]Meeting, error)
	Update(ctx context.Context, req UpdateMeetingRequest) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}
