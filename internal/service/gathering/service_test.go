package gathering

import (
	"context"
	"testing"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/gathering"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/meeting"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMeetingRepo struct {
	meetings []meeting.Meeting
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	return m, nil
}
func (f *fakeMeetingRepo) GetByID(ctx context.Context, id string) (meeting.Meeting, error) {
	return meeting.Meeting{}, meeting.ErrMeetingNotFound
}
func (f *fakeMeetingRepo) ListByEmployee(ctx context.Context, employeeID string) ([]meeting.Meeting, error) {
	return f.meetings, nil
}
func (f *fakeMeetingRepo) ListByAdmin(ctx context.Context, adminID string) ([]meeting.Meeting, error) {
	return f.meetings, nil
}
func (f *fakeMeetingRepo) ListByAdminAndStatus(ctx context.Context, adminID string, status meeting.Status) ([]meeting.Meeting, error) {
	return f.byStatus(status), nil
}
func (f *fakeMeetingRepo) ListByEmployeeAndStatus(ctx context.Context, employeeID string, status meeting.Status) ([]meeting.Meeting, error) {
	return f.byStatus(status), nil
}
func (f *fakeMeetingRepo) Update(ctx context.Context, req meeting.UpdateMeetingRequest) error {
	return nil
}
func (f *fakeMeetingRepo) UpdateStatus(ctx context.Context, id string, status meeting.Status) error {
	return nil
}
func (f *fakeMeetingRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeMeetingRepo) byStatus(status meeting.Status) []meeting.Meeting {
	matched := make([]meeting.Meeting, 0)
	for _, m := range f.meetings {
		if m.Status == status {
			matched = append(matched, m)
		}
	}
	return matched
}

type fakeReviewRepo struct {
	reviews []review.PerformanceReview
}

func (f *fakeReviewRepo) Create(ctx context.Context, pr review.PerformanceReview) (review.PerformanceReview, error) {
	return pr, nil
}
func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (review.PerformanceReview, error) {
	return review.PerformanceReview{}, review.ErrReviewNotFound
}
func (f *fakeReviewRepo) ListByEmployee(ctx context.Context, employeeID string) ([]review.PerformanceReview, error) {
	return f.reviews, nil
}
func (f *fakeReviewRepo) ListByAdmin(ctx context.Context, adminID string) ([]review.PerformanceReview, error) {
	return f.reviews, nil
}
func (f *fakeReviewRepo) Update(ctx context.Context, req review.UpdateReviewRequest) error {
	return nil
}
func (f *fakeReviewRepo) UpdateStatus(ctx context.Context, id string, status review.Status) error {
	return nil
}
func (f *fakeReviewRepo) Delete(ctx context.Context, id string) error { return nil }

func at(value string) *time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func ids(gatherings []gathering.Gathering) []string {
	out := make([]string, 0, len(gatherings))
	for _, g := range gatherings {
		out = append(out, g.ID)
	}
	return out
}

func testMeeting(id string, status meeting.Status, start *time.Time) meeting.Meeting {
	return meeting.Meeting{
		ID:         id,
		AdminID:    "admin-1",
		EmployeeID: "emp-1",
		Status:     status,
		StartDate:  start,
	}
}

func testReview(id string, status review.Status, start *time.Time) review.PerformanceReview {
	return review.PerformanceReview{
		ID:         id,
		AdminID:    "admin-1",
		EmployeeID: "emp-1",
		Status:     status,
		StartDate:  start,
	}
}

func TestGatheringService_ListForEmployee_SortsAscendingByStartDate(t *testing.T) {
	ctx := context.Background()

	meetingRepo := &fakeMeetingRepo{meetings: []meeting.Meeting{
		testMeeting("m-late", meeting.StatusUpcoming, at("2025-06-20T10:00:00Z")),
		testMeeting("m-early", meeting.StatusCompleted, at("2025-06-01T10:00:00Z")),
	}}
	reviewRepo := &fakeReviewRepo{reviews: []review.PerformanceReview{
		testReview("r-mid", review.StatusUpcoming, at("2025-06-10T10:00:00Z")),
	}}

	svc := NewGatheringService(meetingRepo, reviewRepo)
	gatherings, err := svc.ListForEmployee(ctx, "emp-1", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"m-early", "r-mid", "m-late"}, ids(gatherings))
}

func TestGatheringService_ListForEmployee_MeetingWinsStartDateTie(t *testing.T) {
	ctx := context.Background()

	same := at("2025-06-10T10:00:00Z")
	meetingRepo := &fakeMeetingRepo{meetings: []meeting.Meeting{
		testMeeting("m-1", meeting.StatusUpcoming, same),
	}}
	reviewRepo := &fakeReviewRepo{reviews: []review.PerformanceReview{
		testReview("r-1", review.StatusUpcoming, same),
	}}

	svc := NewGatheringService(meetingRepo, reviewRepo)
	gatherings, err := svc.ListForEmployee(ctx, "emp-1", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"m-1", "r-1"}, ids(gatherings))
}

func TestGatheringService_ListForEmployee_UpcomingFilterSpansBothKinds(t *testing.T) {
	ctx := context.Background()

	meetingRepo := &fakeMeetingRepo{meetings: []meeting.Meeting{
		testMeeting("m-upcoming", meeting.StatusUpcoming, at("2025-06-05T10:00:00Z")),
		testMeeting("m-requested", meeting.StatusRequested, nil),
		testMeeting("m-rejected", meeting.StatusRejected, nil),
		testMeeting("m-completed", meeting.StatusCompleted, at("2025-05-01T10:00:00Z")),
	}}
	reviewRepo := &fakeReviewRepo{reviews: []review.PerformanceReview{
		testReview("r-upcoming", review.StatusUpcoming, at("2025-06-12T10:00:00Z")),
		testReview("r-pending", review.StatusPending, nil),
		testReview("r-completed", review.StatusCompleted, at("2025-04-01T10:00:00Z")),
	}}

	status := gathering.CoarseStatusUpcoming
	svc := NewGatheringService(meetingRepo, reviewRepo)
	gatherings, err := svc.ListForEmployee(ctx, "emp-1", &status)

	require.NoError(t, err)
	assert.Equal(t, []string{"m-upcoming", "r-upcoming"}, ids(gatherings))
}

func TestGatheringService_ListScheduled_NewestFirstWithoutUndecidedEntries(t *testing.T) {
	ctx := context.Background()

	meetingRepo := &fakeMeetingRepo{meetings: []meeting.Meeting{
		testMeeting("m-upcoming", meeting.StatusUpcoming, at("2025-06-20T10:00:00Z")),
		testMeeting("m-requested", meeting.StatusRequested, nil),
		testMeeting("m-completed", meeting.StatusCompleted, at("2025-05-01T10:00:00Z")),
	}}
	reviewRepo := &fakeReviewRepo{reviews: []review.PerformanceReview{
		testReview("r-pending", review.StatusPending, nil),
		testReview("r-completed", review.StatusCompleted, at("2025-06-01T10:00:00Z")),
	}}

	svc := NewGatheringService(meetingRepo, reviewRepo)
	gatherings, err := svc.ListScheduledForAdmin(ctx, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"m-upcoming", "r-completed", "m-completed"}, ids(gatherings))
}

func TestGatheringService_ListForAdminByMonth_FiltersByCalendarMonth(t *testing.T) {
	ctx := context.Background()

	meetingRepo := &fakeMeetingRepo{meetings: []meeting.Meeting{
		testMeeting("m-june", meeting.StatusUpcoming, at("2025-06-05T10:00:00Z")),
		testMeeting("m-may", meeting.StatusCompleted, at("2025-05-28T10:00:00Z")),
		testMeeting("m-unscheduled", meeting.StatusRequested, nil),
	}}
	reviewRepo := &fakeReviewRepo{reviews: []review.PerformanceReview{
		testReview("r-june", review.StatusCompleted, at("2025-06-18T10:00:00Z")),
	}}

	svc := NewGatheringService(meetingRepo, reviewRepo)
	gatherings, err := svc.ListForAdminByMonth(ctx, "admin-1", "6")

	require.NoError(t, err)
	assert.Equal(t, []string{"m-june", "r-june"}, ids(gatherings))
}

func TestGatheringService_ListForAdminByMonth_RejectsInvalidMonth(t *testing.T) {
	ctx := context.Background()
	svc := NewGatheringService(&fakeMeetingRepo{}, &fakeReviewRepo{})

	for _, month := range []string{"June", "0", "13", ""} {
		_, err := svc.ListForAdminByMonth(ctx, "admin-1", month)
		assert.ErrorIs(t, err, gathering.ErrInvalidMonth, "month %q", month)
	}
}

func TestGatheringService_DisplayNamesNeverNull(t *testing.T) {
	ctx := context.Background()

	name := "Ruan Kruger"
	withName := testMeeting("m-named", meeting.StatusUpcoming, at("2025-06-05T10:00:00Z"))
	withName.EmployeeName = &name
	withoutName := testReview("r-unnamed", review.StatusUpcoming, at("2025-06-12T10:00:00Z"))

	meetingRepo := &fakeMeetingRepo{meetings: []meeting.Meeting{withName}}
	reviewRepo := &fakeReviewRepo{reviews: []review.PerformanceReview{withoutName}}

	svc := NewGatheringService(meetingRepo, reviewRepo)
	gatherings, err := svc.ListForEmployee(ctx, "emp-1", nil)

	require.NoError(t, err)
	require.Len(t, gatherings, 2)
	assert.Equal(t, "Ruan Kruger", gatherings[0].EmployeeName)
	assert.Equal(t, "", gatherings[1].EmployeeName)
}
