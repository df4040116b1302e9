package meeting

import (
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

// RequestMeetingRequest is the employee-side submission: no schedule yet.
type RequestMeetingRequest struct {
	EmployeeID string `json:"-"`
	AdminID    string `json:"admin_id"`
	Purpose    string `json:"purpose"`
}

func (r *RequestMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.AdminID) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_id",
			Message: "admin_id is required",
		})
	}

	if validator.IsEmpty(r.Purpose) {
		errs = append(errs, validator.ValidationError{
			Field:   "purpose",
			Message: "purpose is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfirmMeetingRequest carries the schedule an admin attaches when
// confirming a requested meeting.
type ConfirmMeetingRequest struct {
	ID        string  `json:"-"`
	IsOnline  bool    `json:"is_online"`
	Location  *string `json:"location,omitempty"`
	Link      *string `json:"link,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

func (r *ConfirmMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_id",
			Message: "meeting_id is required",
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

	if r.IsOnline {
		if r.Link == nil || validator.IsEmpty(*r.Link) {
			errs = append(errs, validator.ValidationError{
				Field:   "link",
				Message: "link is required for online meetings",
			})
		}
	} else {
		if r.Location == nil || validator.IsEmpty(*r.Location) {
			errs = append(errs, validator.ValidationError{
				Field:   "location",
				Message: "location is required for in-person meetings",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateMeetingRequest struct {
	ID        string  `json:"-"`
	IsOnline  *bool   `json:"is_online,omitempty"`
	Location  *string `json:"location,omitempty"`
	Link      *string `json:"link,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Purpose   *string `json:"purpose,omitempty"`
}

func (r *UpdateMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_id",
			Message: "meeting_id is required",
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
