package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/user"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
	"github.com/WolfOWI/coriander-backend-sub000/internal/repository/postgresql"
	leaveservice "github.com/WolfOWI/coriander-backend-sub000/internal/service/leave"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	balanceService *leaveservice.BalanceService
}

func NewEmployeeService(
	db *database.DB,
	userRepository user.UserRepository,
	employeeRepository employee.EmployeeRepository,
	balanceService *leaveservice.BalanceService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		balanceService:     balanceService,
	}
}

// CreateEmployee implements employee.EmployeeService. The user account, the
// employee record and the default leave balances are created in one
// transaction: an employee never exists without balances to draw from.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	employDate, _ := validator.IsValidDate(req.EmployDate)

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		hash := string(passwordHash)
		newUser, err := s.UserRepository.Create(txCtx, user.User{
			FullName:     req.FullName,
			Email:        req.Email,
			PasswordHash: &hash,
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:       newUser.ID,
			Gender:       employee.Gender(req.Gender),
			Phone:        req.Phone,
			JobTitle:     req.JobTitle,
			Department:   req.Department,
			SalaryAmount: req.SalaryAmount,
			PayCycle:     employee.PayCycle(req.PayCycle),
			EmployDate:   employDate,
		})
		if err != nil {
			return err
		}

		created.FullName = &newUser.FullName
		created.Email = &newUser.Email
		created.ProfileURL = newUser.ProfileURL

		return s.balanceService.CreateDefaultBalances(txCtx, created.ID)
	})
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "email", req.Email)
	return created, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// GetEmployeeByUserID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByUserID(ctx, userID)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.EmployeeRepository.Update(ctx, req)
}

// SetSuspended implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetSuspended(ctx context.Context, id string, suspended bool) error {
	return s.EmployeeRepository.SetSuspended(ctx, id, suspended)
}

// DeleteEmployee implements employee.EmployeeService. Deleting the user row
// cascades to the employee record, balances, requests and equipment links.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.UserRepository.Delete(ctx, emp.UserID)
}
