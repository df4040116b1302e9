package leave

import (
	"context"
	"fmt"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
	"github.com/WolfOWI/coriander-backend-sub000/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// RequestService drives the leave request lifecycle. A request starts pending
// and moves to approved or rejected exactly once; only the reset operation can
// bring it back to pending. Balance debits and credits always travel in the
// same transaction as the status flip.
type RequestService struct {
	db *database.DB
	leave.LeaveRequestRepository
	balanceService *BalanceService
}

func NewRequestService(db *database.DB, leaveRequestRepository leave.LeaveRequestRepository, balanceService *BalanceService) *RequestService {
	return &RequestService{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
		balanceService:         balanceService,
	}
}

// Create submits a new pending leave request.
func (s *RequestService) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	request := leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Comment:     req.Comment,
		Status:      leave.LeaveRequestStatusPending,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// Approve flips a pending request to approved and debits the requested days
// from the employee's balance in the same transaction. A request that is no
// longer pending cannot be approved again, so the debit happens at most once.
func (s *RequestService) Approve(ctx context.Context, requestID string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return s.approve(context.WithValue(ctx, "tx", tx), requestID)
	})
}

func (s *RequestService) approve(ctx context.Context, requestID string) error {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, requestID, leave.LeaveRequestStatusApproved); err != nil {
		return fmt.Errorf("failed to approve leave request: %w", err)
	}

	return s.balanceService.Subtract(ctx, request.EmployeeID, request.LeaveTypeID, request.DurationDays())
}

// Reject flips a request to rejected. Balances are never touched: a pending
// request has not been debited yet, and rejecting twice stays harmless.
func (s *RequestService) Reject(ctx context.Context, requestID string) error {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, request.ID, leave.LeaveRequestStatusRejected); err != nil {
		return fmt.Errorf("failed to reject leave request: %w", err)
	}

	return nil
}

// ResetToPending reopens a decided request. If the request had been approved,
// the days debited at approval are credited back inside the same transaction.
func (s *RequestService) ResetToPending(ctx context.Context, requestID string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return s.resetToPending(context.WithValue(ctx, "tx", tx), requestID)
	})
}

func (s *RequestService) resetToPending(ctx context.Context, requestID string) error {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, requestID, leave.LeaveRequestStatusPending); err != nil {
		return fmt.Errorf("failed to reset leave request: %w", err)
	}

	if request.Status == leave.LeaveRequestStatusApproved {
		return s.balanceService.Add(ctx, request.EmployeeID, request.LeaveTypeID, request.DurationDays())
	}

	return nil
}
