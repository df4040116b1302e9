package postgresql

import (
	"context"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, name, description, default_days)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		leaveType.Name, leaveType.Description, leaveType.DefaultDays,
	).Scan(&leaveType.ID, &leaveType.CreatedAt, &leaveType.UpdatedAt)
	if err != nil {
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, default_days, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var leaveType leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&leaveType.ID, &leaveType.Name, &leaveType.Description, &leaveType.DefaultDays,
		&leaveType.CreatedAt, &leaveType.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, default_days, created_at, updated_at
		FROM leave_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]leave.LeaveType, 0)
	for rows.Next() {
		var leaveType leave.LeaveType
		if err := rows.Scan(
			&leaveType.ID, &leaveType.Name, &leaveType.Description, &leaveType.DefaultDays,
			&leaveType.CreatedAt, &leaveType.UpdatedAt,
		); err != nil {
			return nil, err
		}
		types = append(types, leaveType)
	}

	return types, nil
}
