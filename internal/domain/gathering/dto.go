package gathering

import (
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/meeting"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/review"
)

type Type string

const (
	TypeMeeting           Type = "meeting"
	TypePerformanceReview Type = "performance_review"
)

// CoarseStatus is the status vocabulary shared by both gathering kinds.
type CoarseStatus string

const (
	CoarseStatusUpcoming  CoarseStatus = "upcoming"
	CoarseStatusCompleted CoarseStatus = "completed"
)

// Gathering is a read-time projection over meetings and performance reviews.
// It is never persisted; it only exists in timeline responses. Exactly one of
// MeetingStatus/ReviewStatus is set, matching Type.
type Gathering struct {
	Type Type `json:"type"`
	ID   string `json:"id"`

	AdminID      string `json:"admin_id"`
	AdminName    string `json:"admin_name"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	IsOnline bool    `json:"is_online"`
	Location *string `json:"location,omitempty"`
	Link     *string `json:"link,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Purpose *string `json:"purpose,omitempty"`
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
	DocURL  *string `json:"doc_url,omitempty"`

	MeetingStatus *meeting.Status `json:"meeting_status,omitempty"`
	ReviewStatus  *review.Status  `json:"review_status,omitempty"`
}
