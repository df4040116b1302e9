package meeting

import (
	"context"
)

type MeetingService interface {
	RequestMeeting(ctx context.Context, req RequestMeetingRequest) (Meeting, error)
	GetMeeting(ctx context.Context, id string) (Meeting, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Meeting, error)
	ListByAdmin(ctx context.Context, adminID string) ([]Meeting, error)
	ListRequestedByAdmin(ctx context.Context, adminID string) ([]Meeting, error)
	ConfirmMeeting(ctx context.Context, req ConfirmMeetingRequest) error
	RejectMeeting(ctx context.Context, id string) error
	CompleteMeeting(ctx context.Context, id string) error
	RevertToUpcoming(ctx context.Context, id string) error
	UpdateMeeting(ctx context.Context, req UpdateMeetingRequest) error
	DeleteMeeting(ctx context.Context, id string) error
}
