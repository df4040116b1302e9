package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendLeaveDecision(to, employeeName, leaveTypeName, startDate, endDate, decision string) error
	SendMeetingConfirmation(to, employeeName, adminName, startsAt, location string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveDecisionEmailData struct {
	EmployeeName  string
	LeaveTypeName string
	StartDate     string
	EndDate       string
	Decision      string
}

// SendLeaveDecision notifies an employee that their leave request was decided
func (s *emailServiceImpl) SendLeaveDecision(to, employeeName, leaveTypeName, startDate, endDate, decision string) error {
	data := leaveDecisionEmailData{
		EmployeeName:  employeeName,
		LeaveTypeName: leaveTypeName,
		StartDate:     startDate,
		EndDate:       endDate,
		Decision:      decision,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your leave request was %s", decision), body.String())
}

type meetingConfirmationEmailData struct {
	EmployeeName string
	AdminName    string
	StartsAt     string
	Location     string
}

// SendMeetingConfirmation notifies an employee that a requested meeting was scheduled
func (s *emailServiceImpl) SendMeetingConfirmation(to, employeeName, adminName, startsAt, location string) error {
	data := meetingConfirmationEmailData{
		EmployeeName: employeeName,
		AdminName:    adminName,
		StartsAt:     startsAt,
		Location:     location,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "meeting_confirmation.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your meeting has been scheduled", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
