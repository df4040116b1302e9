package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type_id, start_date, end_date, comment, status)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.Comment, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.comment, lr.status, lr.created_at, lr.updated_at,
			   lt.name AS leave_type_name, u.full_name AS employee_name
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employees e ON lr.employee_id = e.id
		JOIN users u ON e.user_id = u.id
		WHERE lr.id = $1
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.LeaveTypeID,
		&request.StartDate, &request.EndDate,
		&request.Comment, &request.Status, &request.CreatedAt, &request.UpdatedAt,
		&request.LeaveTypeName, &request.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.comment, lr.status, lr.created_at, lr.updated_at,
			   lt.name AS leave_type_name, u.full_name AS employee_name
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employees e ON lr.employee_id = e.id
		JOIN users u ON e.user_id = u.id
		WHERE lr.employee_id = $1
		ORDER BY lr.start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var request leave.LeaveRequest
		if err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.LeaveTypeID,
			&request.StartDate, &request.EndDate,
			&request.Comment, &request.Status, &request.CreatedAt, &request.UpdatedAt,
			&request.LeaveTypeName, &request.EmployeeName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	i := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", i))
		args = append(args, *filter.EmployeeID)
		i++
	}
	if filter.LeaveTypeID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.leave_type_id = $%d", i))
		args = append(args, *filter.LeaveTypeID)
		i++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", i))
		args = append(args, *filter.Status)
		i++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests lr" + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.comment, lr.status, lr.created_at, lr.updated_at,
			   lt.name AS leave_type_name, u.full_name AS employee_name
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employees e ON lr.employee_id = e.id
		JOIN users u ON e.user_id = u.id
	` + whereClause + fmt.Sprintf(" ORDER BY lr.created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var request leave.LeaveRequest
		if err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.LeaveTypeID,
			&request.StartDate, &request.EndDate,
			&request.Comment, &request.Status, &request.CreatedAt, &request.UpdatedAt,
			&request.LeaveTypeName, &request.EmployeeName,
		); err != nil {
			return nil, 0, err
		}
		requests = append(requests, request)
	}

	return requests, total, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
