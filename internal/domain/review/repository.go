package review

import "context"

// ReviewRepository - interface for the performance_reviews table
type ReviewRepository interface {
	Create(ctx context.Context, pr PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id string) (PerformanceReview, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PerformanceReview, error)
	ListByAdmin(ctx context.Context, adminID string) ([]PerformanceReview, error)
	Update(ctx context.Context, req UpdateReviewRequest) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}
