package gathering

import (
	"context"
	"fmt"
	"sort"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/gathering"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/meeting"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/review"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

// GatheringServiceImpl merges meetings and performance reviews into one
// chronological timeline. Nothing here is persisted; every view is assembled
// from live queries.
type GatheringServiceImpl struct {
	meeting.MeetingRepository
	review.ReviewRepository
}

func NewGatheringService(meetingRepository meeting.MeetingRepository, reviewRepository review.ReviewRepository) gathering.GatheringService {
	return &GatheringServiceImpl{
		MeetingRepository: meetingRepository,
		ReviewRepository:  reviewRepository,
	}
}

var meetingStatuses = []meeting.Status{
	meeting.StatusRequested,
	meeting.StatusUpcoming,
	meeting.StatusRejected,
	meeting.StatusCompleted,
}

func fromMeeting(m meeting.Meeting) gathering.Gathering {
	g := gathering.Gathering{
		Type:          gathering.TypeMeeting,
		ID:            m.ID,
		AdminID:       m.AdminID,
		EmployeeID:    m.EmployeeID,
		IsOnline:      m.IsOnline,
		Location:      m.Location,
		Link:          m.Link,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Purpose:       &m.Purpose,
		MeetingStatus: &m.Status,
	}
	// Display names are never null in timeline entries.
	if m.AdminName != nil {
		g.AdminName = *m.AdminName
	}
	if m.EmployeeName != nil {
		g.EmployeeName = *m.EmployeeName
	}
	return g
}

func fromReview(pr review.PerformanceReview) gathering.Gathering {
	g := gathering.Gathering{
		Type:         gathering.TypePerformanceReview,
		ID:           pr.ID,
		AdminID:      pr.AdminID,
		EmployeeID:   pr.EmployeeID,
		IsOnline:     pr.IsOnline,
		Location:     pr.Location,
		Link:         pr.Link,
		StartDate:    pr.StartDate,
		EndDate:      pr.EndDate,
		Rating:       pr.Rating,
		Comment:      pr.Comment,
		DocURL:       pr.DocURL,
		ReviewStatus: &pr.Status,
	}
	if pr.AdminName != nil {
		g.AdminName = *pr.AdminName
	}
	if pr.EmployeeName != nil {
		g.EmployeeName = *pr.EmployeeName
	}
	return g
}

// sortAscending orders entries by start date, oldest first. Unscheduled
// entries (nil start date) sort before everything else. Ties between a
// meeting and a review on the same instant put the meeting first.
func sortAscending(gatherings []gathering.Gathering) {
	sort.SliceStable(gatherings, func(i, j int) bool {
		return lessByStart(gatherings[i], gatherings[j])
	})
}

func sortDescending(gatherings []gathering.Gathering) {
	sort.SliceStable(gatherings, func(i, j int) bool {
		return lessByStart(gatherings[j], gatherings[i])
	})
}

func lessByStart(a, b gathering.Gathering) bool {
	switch {
	case a.StartDate == nil && b.StartDate == nil:
		return a.Type == gathering.TypeMeeting && b.Type == gathering.TypePerformanceReview
	case a.StartDate == nil:
		return true
	case b.StartDate == nil:
		return false
	}
	if a.StartDate.Equal(*b.StartDate) {
		return a.Type == gathering.TypeMeeting && b.Type == gathering.TypePerformanceReview
	}
	return a.StartDate.Before(*b.StartDate)
}

// matchesCoarse maps the two underlying status enums onto the shared
// upcoming/completed vocabulary.
func matchesCoarse(g gathering.Gathering, status gathering.CoarseStatus) bool {
	switch status {
	case gathering.CoarseStatusUpcoming:
		return (g.MeetingStatus != nil && *g.MeetingStatus == meeting.StatusUpcoming) ||
			(g.ReviewStatus != nil && *g.ReviewStatus == review.StatusUpcoming)
	case gathering.CoarseStatusCompleted:
		return (g.MeetingStatus != nil && *g.MeetingStatus == meeting.StatusCompleted) ||
			(g.ReviewStatus != nil && *g.ReviewStatus == review.StatusCompleted)
	}
	return false
}

func filterCoarse(gatherings []gathering.Gathering, status gathering.CoarseStatus) []gathering.Gathering {
	filtered := make([]gathering.Gathering, 0, len(gatherings))
	for _, g := range gatherings {
		if matchesCoarse(g, status) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func (s *GatheringServiceImpl) collectForEmployee(ctx context.Context, employeeID string) ([]gathering.Gathering, error) {
	gatherings := make([]gathering.Gathering, 0)

	for _, status := range meetingStatuses {
		meetings, err := s.MeetingRepository.ListByEmployeeAndStatus(ctx, employeeID, status)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s meetings: %w", status, err)
		}
		for _, m := range meetings {
			gatherings = append(gatherings, fromMeeting(m))
		}
	}

	reviews, err := s.ReviewRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	for _, pr := range reviews {
		gatherings = append(gatherings, fromReview(pr))
	}

	return gatherings, nil
}

func (s *GatheringServiceImpl) collectForAdmin(ctx context.Context, adminID string) ([]gathering.Gathering, error) {
	gatherings := make([]gathering.Gathering, 0)

	for _, status := range meetingStatuses {
		meetings, err := s.MeetingRepository.ListByAdminAndStatus(ctx, adminID, status)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s meetings: %w", status, err)
		}
		for _, m := range meetings {
			gatherings = append(gatherings, fromMeeting(m))
		}
	}

	reviews, err := s.ReviewRepository.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	for _, pr := range reviews {
		gatherings = append(gatherings, fromReview(pr))
	}

	return gatherings, nil
}

// ListForEmployee implements gathering.GatheringService.
func (s *GatheringServiceImpl) ListForEmployee(ctx context.Context, employeeID string, status *gathering.CoarseStatus) ([]gathering.Gathering, error) {
	gatherings, err := s.collectForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if status != nil {
		gatherings = filterCoarse(gatherings, *status)
	}

	sortAscending(gatherings)
	return gatherings, nil
}

// ListForAdmin implements gathering.GatheringService.
func (s *GatheringServiceImpl) ListForAdmin(ctx context.Context, adminID string, status *gathering.CoarseStatus) ([]gathering.Gathering, error) {
	gatherings, err := s.collectForAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if status != nil {
		gatherings = filterCoarse(gatherings, *status)
	}

	sortAscending(gatherings)
	return gatherings, nil
}

// ListScheduledForEmployee implements gathering.GatheringService. Only
// upcoming and completed entries appear: requested and rejected meetings and
// pending reviews have no committed schedule to show.
func (s *GatheringServiceImpl) ListScheduledForEmployee(ctx context.Context, employeeID string) ([]gathering.Gathering, error) {
	gatherings, err := s.collectForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	scheduled := append(
		filterCoarse(gatherings, gathering.CoarseStatusUpcoming),
		filterCoarse(gatherings, gathering.CoarseStatusCompleted)...,
	)

	sortDescending(scheduled)
	return scheduled, nil
}

// ListScheduledForAdmin implements gathering.GatheringService.
func (s *GatheringServiceImpl) ListScheduledForAdmin(ctx context.Context, adminID string) ([]gathering.Gathering, error) {
	gatherings, err := s.collectForAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	scheduled := append(
		filterCoarse(gatherings, gathering.CoarseStatusUpcoming),
		filterCoarse(gatherings, gathering.CoarseStatusCompleted)...,
	)

	sortDescending(scheduled)
	return scheduled, nil
}

// ListForAdminByMonth implements gathering.GatheringService. The month is the
// calendar month of the current year; unscheduled entries are excluded rather
// than treated as an error.
func (s *GatheringServiceImpl) ListForAdminByMonth(ctx context.Context, adminID string, month string) ([]gathering.Gathering, error) {
	targetMonth, ok := validator.ParseMonth(month)
	if !ok {
		return nil, gathering.ErrInvalidMonth
	}

	gatherings, err := s.collectForAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	filtered := make([]gathering.Gathering, 0, len(gatherings))
	for _, g := range gatherings {
		if g.StartDate == nil {
			continue
		}
		if g.StartDate.Month() == targetMonth {
			filtered = append(filtered, g)
		}
	}

	sortAscending(filtered)
	return filtered, nil
}
