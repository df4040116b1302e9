package leave

import (
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name        string  `json:"leave_type_name"`
	Description *string `json:"leave_type_description,omitempty"`
	DefaultDays int     `json:"default_days"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name must not exceed 255 characters",
		})
	}

	if r.DefaultDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "default_days",
			Message: "default_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeaveRequestRequest struct {
	EmployeeID  string  `json:"-"`
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Comment     *string `json:"comment,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
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

type LeaveRequestFilter struct {
	EmployeeID  *string
	LeaveTypeID *string
	Status      *string
	Page        int
	Limit       int
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(LeaveRequestStatusPending),
		string(LeaveRequestStatusApproved),
		string(LeaveRequestStatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BalanceSummary is the per-type balance view returned to clients.
type BalanceSummary struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	RemainingDays int    `json:"remaining_days"`
	DefaultDays   int    `json:"default_days"`
}

// BalanceTotalsResponse carries the summed totals for an employee.
type BalanceTotalsResponse struct {
	RemainingDays int `json:"remaining_days"`
	TotalDays     int `json:"total_days"`
}
