package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, gender, phone, job_title, department,
			salary_amount, pay_cycle, last_paid_at, employ_date, is_suspended
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, false
		) RETURNING id, is_suspended, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.UserID, emp.Gender, emp.Phone, emp.JobTitle, emp.Department,
		emp.SalaryAmount, emp.PayCycle, emp.LastPaidAt, emp.EmployDate,
	).Scan(&emp.ID, &emp.IsSuspended, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrUserAlreadyLinked
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.gender, e.phone, e.job_title, e.department,
			   e.salary_amount, e.pay_cycle, e.last_paid_at, e.employ_date, e.is_suspended,
			   e.created_at, e.updated_at,
			   u.full_name, u.email, u.profile_url
		FROM employees e
		JOIN users u ON e.user_id = u.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.UserID, &emp.Gender, &emp.Phone, &emp.JobTitle, &emp.Department,
		&emp.SalaryAmount, &emp.PayCycle, &emp.LastPaidAt, &emp.EmployDate, &emp.IsSuspended,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.FullName, &emp.Email, &emp.ProfileURL,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.gender, e.phone, e.job_title, e.department,
			   e.salary_amount, e.pay_cycle, e.last_paid_at, e.employ_date, e.is_suspended,
			   e.created_at, e.updated_at,
			   u.full_name, u.email, u.profile_url
		FROM employees e
		JOIN users u ON e.user_id = u.id
		WHERE e.user_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&emp.ID, &emp.UserID, &emp.Gender, &emp.Phone, &emp.JobTitle, &emp.Department,
		&emp.SalaryAmount, &emp.PayCycle, &emp.LastPaidAt, &emp.EmployDate, &emp.IsSuspended,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.FullName, &emp.Email, &emp.ProfileURL,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.gender, e.phone, e.job_title, e.department,
			   e.salary_amount, e.pay_cycle, e.last_paid_at, e.employ_date, e.is_suspended,
			   e.created_at, e.updated_at,
			   u.full_name, u.email, u.profile_url
		FROM employees e
		JOIN users u ON e.user_id = u.id
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.Gender, &emp.Phone, &emp.JobTitle, &emp.Department,
			&emp.SalaryAmount, &emp.PayCycle, &emp.LastPaidAt, &emp.EmployDate, &emp.IsSuspended,
			&emp.CreatedAt, &emp.UpdatedAt,
			&emp.FullName, &emp.Email, &emp.ProfileURL,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.JobTitle != nil {
		updates["job_title"] = *req.JobTitle
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.SalaryAmount != nil {
		updates["salary_amount"] = *req.SalaryAmount
	}
	if req.PayCycle != nil {
		updates["pay_cycle"] = *req.PayCycle
	}
	if req.LastPaidAt != nil {
		updates["last_paid_at"] = *req.LastPaidAt
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
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

	sql := "UPDATE employees SET " +
		strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetSuspended implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetSuspended(ctx context.Context, id string, suspended bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_suspended = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, suspended, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
