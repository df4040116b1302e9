package gathering

import (
	"context"
)

type GatheringService interface {
	ListForEmployee(ctx context.Context, employeeID string, status *CoarseStatus) ([]Gathering, error)
	ListForAdmin(ctx context.Context, adminID string, status *CoarseStatus) ([]Gathering, error)
	// Scheduled views carry only upcoming and completed entries, newest first.
	ListScheduledForEmployee(ctx context.Context, employeeID string) ([]Gathering, error)
	ListScheduledForAdmin(ctx context.Context, adminID string) ([]Gathering, error)
	ListForAdminByMonth(ctx context.Context, adminID string, month string) ([]Gathering, error)
}
