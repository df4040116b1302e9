package meeting

import "time"

type Status string

const (
	StatusRequested Status = "requested"
	StatusUpcoming  Status = "upcoming"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Meeting entity. Start and end dates stay nil while the meeting is only
// requested; confirming it sets the schedule and flips status to upcoming.
type Meeting struct {
	ID         string
	AdminID    string
	EmployeeID string

	IsOnline bool
	Location *string
	Link     *string

	StartDate *time.Time
	EndDate   *time.Time
	Purpose   string

	Status      Status
	RequestedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	AdminName    *string
	EmployeeName *string
}
