package review

import (
	"context"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req CreateReviewRequest) (PerformanceReview, error)
	GetReview(ctx context.Context, id string) (PerformanceReview, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PerformanceReview, error)
	ListByAdmin(ctx context.Context, adminID string) ([]PerformanceReview, error)
	UpdateReview(ctx context.Context, req UpdateReviewRequest) error
	CompleteReview(ctx context.Context, id string, rating int, comment *string) error
	DeleteReview(ctx context.Context, id string) error
}
