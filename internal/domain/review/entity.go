package review

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
)

// PerformanceReview entity. Rating, comment and document are filled in when
// the review is held; until then they stay nil.
type PerformanceReview struct {
	ID         string
	AdminID    string
	EmployeeID string

	IsOnline bool
	Location *string
	Link     *string

	StartDate *time.Time
	EndDate   *time.Time

	Rating  *int
	Comment *string
	DocURL  *string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	AdminName    *string
	EmployeeName *string
}
