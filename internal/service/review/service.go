package review

import (
	"context"
	"fmt"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/review"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

type ReviewServiceImpl struct {
	review.ReviewRepository
	employee.EmployeeRepository
}

func NewReviewService(reviewRepository review.ReviewRepository, employeeRepository employee.EmployeeRepository) review.ReviewService {
	return &ReviewServiceImpl{
		ReviewRepository:   reviewRepository,
		EmployeeRepository: employeeRepository,
	}
}

// CreateReview implements review.ReviewService. A review is scheduled by an
// admin up front, so it starts upcoming rather than pending.
func (s *ReviewServiceImpl) CreateReview(ctx context.Context, req review.CreateReviewRequest) (review.PerformanceReview, error) {
	if err := req.Validate(); err != nil {
		return review.PerformanceReview{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return review.PerformanceReview{}, err
	}

	startDate, _ := validator.IsValidDateTime(req.StartDate)
	endDate, _ := validator.IsValidDateTime(req.EndDate)

	created, err := s.ReviewRepository.Create(ctx, review.PerformanceReview{
		AdminID:    req.AdminID,
		EmployeeID: req.EmployeeID,
		IsOnline:   req.IsOnline,
		Location:   req.Location,
		Link:       req.Link,
		StartDate:  &startDate,
		EndDate:    &endDate,
		Status:     review.StatusUpcoming,
	})
	if err != nil {
		return review.PerformanceReview{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return created, nil
}

// GetReview implements review.ReviewService.
func (s *ReviewServiceImpl) GetReview(ctx context.Context, id string) (review.PerformanceReview, error) {
	return s.ReviewRepository.GetByID(ctx, id)
}

// ListByEmployee implements review.ReviewService.
func (s *ReviewServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]review.PerformanceReview, error) {
	return s.ReviewRepository.ListByEmployee(ctx, employeeID)
}

// ListByAdmin implements review.ReviewService.
func (s *ReviewServiceImpl) ListByAdmin(ctx context.Context, adminID string) ([]review.PerformanceReview, error) {
	return s.ReviewRepository.ListByAdmin(ctx, adminID)
}

// UpdateReview implements review.ReviewService.
func (s *ReviewServiceImpl) UpdateReview(ctx context.Context, req review.UpdateReviewRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.ReviewRepository.Update(ctx, req)
}

// CompleteReview implements review.ReviewService. Completing records the
// rating and optional comment and flips the status in one step.
func (s *ReviewServiceImpl) CompleteReview(ctx context.Context, id string, rating int, comment *string) error {
	if !validator.IsValidRating(rating) {
		return review.ErrInvalidRating
	}

	if _, err := s.ReviewRepository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.ReviewRepository.Update(ctx, review.UpdateReviewRequest{
		ID:      id,
		Rating:  &rating,
		Comment: comment,
	}); err != nil {
		return fmt.Errorf("failed to record review outcome: %w", err)
	}

	return s.ReviewRepository.UpdateStatus(ctx, id, review.StatusCompleted)
}

// DeleteReview implements review.ReviewService.
func (s *ReviewServiceImpl) DeleteReview(ctx context.Context, id string) error {
	return s.ReviewRepository.Delete(ctx, id)
}
