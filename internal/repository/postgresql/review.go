package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/review"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) review.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

const reviewSelect = `
	SELECT pr.id, pr.admin_id, pr.employee_id, pr.is_online, pr.location, pr.link,
		   pr.start_date, pr.end_date, pr.rating, pr.comment, pr.doc_url, pr.status,
		   pr.created_at, pr.updated_at,
		   au.full_name AS admin_name, eu.full_name AS employee_name
	FROM performance_reviews pr
	JOIN users au ON pr.admin_id = au.id
	JOIN employees e ON pr.employee_id = e.id
	JOIN users eu ON e.user_id = eu.id
`

func scanReview(row pgx.Row) (review.PerformanceReview, error) {
	var pr review.PerformanceReview
	err := row.Scan(
		&pr.ID, &pr.AdminID, &pr.EmployeeID, &pr.IsOnline, &pr.Location, &pr.Link,
		&pr.StartDate, &pr.EndDate, &pr.Rating, &pr.Comment, &pr.DocURL, &pr.Status,
		&pr.CreatedAt, &pr.UpdatedAt,
		&pr.AdminName, &pr.EmployeeName,
	)
	return pr, err
}

func collectReviews(rows pgx.Rows) ([]review.PerformanceReview, error) {
	reviews := make([]review.PerformanceReview, 0)
	for rows.Next() {
		pr, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, pr)
	}
	return reviews, nil
}

// Create implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, pr review.PerformanceReview) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			id, admin_id, employee_id, is_online, location, link,
			start_date, end_date, rating, comment, doc_url, status
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		pr.AdminID, pr.EmployeeID, pr.IsOnline, pr.Location, pr.Link,
		pr.StartDate, pr.EndDate, pr.Rating, pr.Comment, pr.DocURL, pr.Status,
	).Scan(&pr.ID, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		return review.PerformanceReview{}, err
	}

	return pr, nil
}

// GetByID implements review.ReviewRepository.
func (r *reviewRepositoryImpl) GetByID(ctx context.Context, id string) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	pr, err := scanReview(q.QueryRow(ctx, reviewSelect+" WHERE pr.id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return review.PerformanceReview{}, review.ErrReviewNotFound
		}
		return review.PerformanceReview{}, err
	}

	return pr, nil
}

// ListByEmployee implements review.ReviewRepository.
func (r *reviewRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, reviewSelect+" WHERE pr.employee_id = $1 ORDER BY pr.start_date DESC NULLS LAST", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReviews(rows)
}

// ListByAdmin implements review.ReviewRepository.
func (r *reviewRepositoryImpl) ListByAdmin(ctx context.Context, adminID string) ([]review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, reviewSelect+" WHERE pr.admin_id = $1 ORDER BY pr.start_date DESC NULLS LAST", adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReviews(rows)
}

// Update implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Update(ctx context.Context, req review.UpdateReviewRequest) error {
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
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}
	if req.DocURL != nil {
		updates["doc_url"] = *req.DocURL
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for review update")
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

	sql := "UPDATE performance_reviews SET " +
		strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

// UpdateStatus implements review.ReviewRepository.
func (r *reviewRepositoryImpl) UpdateStatus(ctx context.Context, id string, status review.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

// Delete implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}
