package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/email"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	balanceService *BalanceService
	requestService *RequestService
	emailService   email.EmailService
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	balanceService *BalanceService,
	requestService *RequestService,
	emailService email.EmailService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		balanceService:         balanceService,
		requestService:         requestService,
		emailService:           emailService,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	leaveType := leave.LeaveType{
		Name:        req.Name,
		Description: req.Description,
		DefaultDays: req.DefaultDays,
	}

	created, err := l.LeaveTypeRepository.Create(ctx, leaveType)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return created, nil
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return l.LeaveTypeRepository.List(ctx)
}

// CreateDefaultBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateDefaultBalances(ctx context.Context, employeeID string) error {
	if _, err := l.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return err
	}
	return l.balanceService.CreateDefaultBalances(ctx, employeeID)
}

// ListBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) ListBalances(ctx context.Context, employeeID string) ([]leave.BalanceSummary, error) {
	return l.balanceService.ListBalances(ctx, employeeID)
}

// GetBalanceTotals implements leave.LeaveService.
func (l *LeaveServiceImpl) GetBalanceTotals(ctx context.Context, employeeID string) (leave.BalanceTotalsResponse, error) {
	return l.balanceService.GetBalanceTotals(ctx, employeeID)
}

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if _, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.LeaveRequest{}, err
	}

	return l.requestService.Create(ctx, req)
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	return l.LeaveRequestRepository.GetByID(ctx, requestID)
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	return l.LeaveRequestRepository.List(ctx, filter)
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
}

// ApproveLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, requestID string) error {
	if err := l.requestService.Approve(ctx, requestID); err != nil {
		return err
	}

	l.notifyDecision(ctx, requestID, "approved")
	return nil
}

// RejectLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, requestID string) error {
	if err := l.requestService.Reject(ctx, requestID); err != nil {
		return err
	}

	l.notifyDecision(ctx, requestID, "rejected")
	return nil
}

// ResetLeaveRequestToPending implements leave.LeaveService.
func (l *LeaveServiceImpl) ResetLeaveRequestToPending(ctx context.Context, requestID string) error {
	return l.requestService.ResetToPending(ctx, requestID)
}

// DeleteLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, requestID string) error {
	return l.LeaveRequestRepository.Delete(ctx, requestID)
}

// notifyDecision emails the employee about the decision. Failures are logged
// and swallowed; the decision itself has already been committed.
func (l *LeaveServiceImpl) notifyDecision(ctx context.Context, requestID, decision string) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		slog.Warn("failed to load leave request for notification", "request_id", requestID, "error", err)
		return
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil || emp.Email == nil {
		slog.Warn("failed to resolve employee email for notification", "employee_id", request.EmployeeID, "error", err)
		return
	}

	employeeName := ""
	if emp.FullName != nil {
		employeeName = *emp.FullName
	}
	leaveTypeName := ""
	if request.LeaveTypeName != nil {
		leaveTypeName = *request.LeaveTypeName
	}

	if err := l.emailService.SendLeaveDecision(*emp.Email, employeeName, leaveTypeName,
		request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"), decision); err != nil {
		slog.Warn("failed to send leave decision email", "request_id", requestID, "error", err)
	}
}
