package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/meeting"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/email"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

// MeetingServiceImpl drives the meeting lifecycle: an employee requests a
// meeting with an admin, the admin confirms it with a schedule (upcoming),
// rejects it, or later marks it completed. Completed meetings can be reverted
// to upcoming.
type MeetingServiceImpl struct {
	meeting.MeetingRepository
	employee.EmployeeRepository
	emailService email.EmailService
}

func NewMeetingService(
	meetingRepository meeting.MeetingRepository,
	employeeRepository employee.EmployeeRepository,
	emailService email.EmailService,
) meeting.MeetingService {
	return &MeetingServiceImpl{
		MeetingRepository:  meetingRepository,
		EmployeeRepository: employeeRepository,
		emailService:       emailService,
	}
}

// RequestMeeting implements meeting.MeetingService.
func (s *MeetingServiceImpl) RequestMeeting(ctx context.Context, req meeting.RequestMeetingRequest) (meeting.Meeting, error) {
	if err := req.Validate(); err != nil {
		return meeting.Meeting{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return meeting.Meeting{}, err
	}

	created, err := s.MeetingRepository.Create(ctx, meeting.Meeting{
		AdminID:    req.AdminID,
		EmployeeID: req.EmployeeID,
		Purpose:    req.Purpose,
		Status:     meeting.StatusRequested,
	})
	if err != nil {
		return meeting.Meeting{}, fmt.Errorf("failed to create meeting request: %w", err)
	}

	return created, nil
}

// GetMeeting implements meeting.MeetingService.
func (s *MeetingServiceImpl) GetMeeting(ctx context.Context, id string) (meeting.Meeting, error) {
	return s.MeetingRepository.GetByID(ctx, id)
}

// ListByEmployee implements meeting.MeetingService.
func (s *MeetingServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]meeting.Meeting, error) {
	return s.MeetingRepository.ListByEmployee(ctx, employeeID)
}

// ListByAdmin implements meeting.MeetingService.
func (s *MeetingServiceImpl) ListByAdmin(ctx context.Context, adminID string) ([]meeting.Meeting, error) {
	return s.MeetingRepository.ListByAdmin(ctx, adminID)
}

// ListRequestedByAdmin implements meeting.MeetingService.
func (s *MeetingServiceImpl) ListRequestedByAdmin(ctx context.Context, adminID string) ([]meeting.Meeting, error) {
	return s.MeetingRepository.ListByAdminAndStatus(ctx, adminID, meeting.StatusRequested)
}

// ConfirmMeeting implements meeting.MeetingService. Only a requested meeting
// can be confirmed; confirming attaches the schedule and flips the status to
// upcoming.
func (s *MeetingServiceImpl) ConfirmMeeting(ctx context.Context, req meeting.ConfirmMeetingRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	m, err := s.MeetingRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if m.Status != meeting.StatusRequested {
		return meeting.ErrMeetingNotRequested
	}

	startDate, _ := validator.IsValidDateTime(req.StartDate)
	endDate, _ := validator.IsValidDateTime(req.EndDate)

	start := startDate.Format("2006-01-02T15:04:05Z07:00")
	end := endDate.Format("2006-01-02T15:04:05Z07:00")
	if err := s.MeetingRepository.Update(ctx, meeting.UpdateMeetingRequest{
		ID:        req.ID,
		IsOnline:  &req.IsOnline,
		Location:  req.Location,
		Link:      req.Link,
		StartDate: &start,
		EndDate:   &end,
	}); err != nil {
		return fmt.Errorf("failed to attach meeting schedule: %w", err)
	}

	if err := s.MeetingRepository.UpdateStatus(ctx, req.ID, meeting.StatusUpcoming); err != nil {
		return fmt.Errorf("failed to confirm meeting: %w", err)
	}

	s.notifyConfirmation(ctx, req.ID)
	return nil
}

// RejectMeeting implements meeting.MeetingService.
func (s *MeetingServiceImpl) RejectMeeting(ctx context.Context, id string) error {
	m, err := s.MeetingRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m.Status != meeting.StatusRequested {
		return meeting.ErrMeetingNotRequested
	}

	return s.MeetingRepository.UpdateStatus(ctx, id, meeting.StatusRejected)
}

// CompleteMeeting implements meeting.MeetingService.
func (s *MeetingServiceImpl) CompleteMeeting(ctx context.Context, id string) error {
	if _, err := s.MeetingRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.MeetingRepository.UpdateStatus(ctx, id, meeting.StatusCompleted)
}

// RevertToUpcoming implements meeting.MeetingService.
func (s *MeetingServiceImpl) RevertToUpcoming(ctx context.Context, id string) error {
	m, err := s.MeetingRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m.Status != meeting.StatusCompleted {
		return meeting.ErrMeetingNotCompleted
	}

	return s.MeetingRepository.UpdateStatus(ctx, id, meeting.StatusUpcoming)
}

// UpdateMeeting implements meeting.MeetingService.
func (s *MeetingServiceImpl) UpdateMeeting(ctx context.Context, req meeting.UpdateMeetingRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.MeetingRepository.Update(ctx, req)
}

// DeleteMeeting implements meeting.MeetingService.
func (s *MeetingServiceImpl) DeleteMeeting(ctx context.Context, id string) error {
	return s.MeetingRepository.Delete(ctx, id)
}

// notifyConfirmation emails the employee about the freshly scheduled meeting.
// Failures are logged and swallowed.
func (s *MeetingServiceImpl) notifyConfirmation(ctx context.Context, meetingID string) {
	m, err := s.MeetingRepository.GetByID(ctx, meetingID)
	if err != nil {
		slog.Warn("failed to load meeting for notification", "meeting_id", meetingID, "error", err)
		return
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, m.EmployeeID)
	if err != nil || emp.Email == nil {
		slog.Warn("failed to resolve employee email for notification", "employee_id", m.EmployeeID, "error", err)
		return
	}

	employeeName := ""
	if emp.FullName != nil {
		employeeName = *emp.FullName
	}
	adminName := ""
	if m.AdminName != nil {
		adminName = *m.AdminName
	}
	startsAt := ""
	if m.StartDate != nil {
		startsAt = m.StartDate.Format("Mon, 02 Jan 2006 15:04")
	}
	location := "Online"
	if !m.IsOnline && m.Location != nil {
		location = *m.Location
	}

	if err := s.emailService.SendMeetingConfirmation(*emp.Email, employeeName, adminName, startsAt, location); err != nil {
		slog.Warn("failed to send meeting confirmation email", "meeting_id", meetingID, "error", err)
	}
}
