package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/meeting"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type meetingRepositoryImpl struct {
	db *database.DB
}

func NewMeetingRepository(db *database.DB) meeting.MeetingRepository {
	return &meetingRepositoryImpl{db: db}
}

const meetingSelect = `
	SELECT m.id, m.admin_id, m.employee_id, m.is_online, m.location, m.link,
		   m.start_date, m.end_date, m.purpose, m.status, m.requested_at,
		   m.created_at, m.updated_at,
		   au.full_name AS admin_name, eu.full_name AS employee_name
	FROM meetings m
	JOIN users au ON m.admin_id = au.id
	JOIN employees e ON m.employee_id = e.id
	JOIN users eu ON e.user_id = eu.id
`

func scanMeeting(row pgx.Row) (meeting.Meeting, error) {
	var m meeting.Meeting
	err := row.Scan(
		&m.ID, &m.AdminID, &m.EmployeeID, &m.IsOnline, &m.Location, &m.Link,
		&m.StartDate, &m.EndDate, &m.Purpose, &m.Status, &m.RequestedAt,
		&m.CreatedAt, &m.UpdatedAt,
		&m.AdminName, &m.EmployeeName,
	)
	return m, err
}

func collectMeetings(rows pgx.Rows) ([]meeting.Meeting, error) {
	meetings := make([]meeting.Meeting, 0)
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// Create implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) Create(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meetings (
			id, admin_id, employee_id, is_online, location, link,
			start_date, end_date, purpose, status, requested_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, NOW()
		) RETURNING id, requested_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		m.AdminID, m.EmployeeID, m.IsOnline, m.Location, m.Link,
		m.StartDate, m.EndDate, m.Purpose, m.Status,
	).Scan(&m.ID, &m.RequestedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return meeting.Meeting{}, err
	}

	return m, nil
}

// GetByID implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) GetByID(ctx context.Context, id string) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	m, err := scanMeeting(q.QueryRow(ctx, meetingSelect+" WHERE m.id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return meeting.Meeting{}, meeting.ErrMeetingNotFound
		}
		return meeting.Meeting{}, err
	}

	return m, nil
}

// ListByEmployee implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, meetingSelect+" WHERE m.employee_id = $1 ORDER BY m.start_date DESC NULLS LAST", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMeetings(rows)
}

// ListByAdmin implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) ListByAdmin(ctx context.Context, adminID string) ([]meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, meetingSelect+" WHERE m.admin_id = $1 ORDER BY m.start_date DESC NULLS LAST", adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMeetings(rows)
}

// ListByAdminAndStatus implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) ListByAdminAndStatus(ctx context.Context, adminID string, status meeting.Status) ([]meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		meetingSelect+" WHERE m.admin_id = $1 AND m.status = $2 ORDER BY m.start_date ASC NULLS LAST",
		adminID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMeetings(rows)
}

// ListByEmployeeAndStatus implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) ListByEmployeeAndStatus(ctx context.Context, employeeID string, status meeting.Status) ([]meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		meetingSelect+" WHERE m.employee_id = $1 AND m.status = $2 ORDER BY m.start_date ASC NULLS LAST",
		employeeID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMeetings(rows)
}

// Update implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) Update(ctx context.Context, req meeting.UpdateMeetingRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.IsOnline != nil {
		updates["is_online"] = *req.IsOnline
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Purpose != nil {
		updates["purpose"] = *req.Purpose
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for meeting update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE meetings SET " +
		strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return meeting.ErrMeetingNotFound
	}
	return nil
}

// UpdateStatus implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) UpdateStatus(ctx context.Context, id string, status meeting.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE meetings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return meeting.ErrMeetingNotFound
	}
	return nil
}

// Delete implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return meeting.ErrMeetingNotFound
	}
	return nil
}
