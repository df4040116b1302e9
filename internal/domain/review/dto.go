package review

import (
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

type CreateReviewRequest struct {
	AdminID    string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	IsOnline   bool    `json:"is_online"`
	Location   *string `json:"location,omitempty"`
	Link       *string `json:"link,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AdminID) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_id",
			Message: "admin_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDateTime(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be an ISO8601 timestamp",
		})
	}

	end, endOK := validator.IsValidDateTime(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be an ISO8601 timestamp",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateReviewRequest struct {
	ID        string  `json:"-"`
	IsOnline  *bool   `json:"is_online,omitempty"`
	Location  *string `json:"location,omitempty"`
	Link      *string `json:"link,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	Comment   *string `json:"comment,omitempty"`
	DocURL    *string `json:"doc_url,omitempty"`
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_id",
			Message: "review_id is required",
		})
	}

	if r.Rating != nil && !validator.IsValidRating(*r.Rating) {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDateTime(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be an ISO8601 timestamp",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDateTime(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
