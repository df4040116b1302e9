package employee

import (
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Gender       string  `json:"gender"`
	Phone        *string `json:"phone,omitempty"`
	JobTitle     string  `json:"job_title"`
	Department   string  `json:"department"`
	SalaryAmount float64 `json:"salary_amount"`
	PayCycle     string  `json:"pay_cycle"`
	EmployDate   string  `json:"employ_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Gender, []string{string(GenderFemale), string(GenderMale), string(GenderOther)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of female, male, other",
		})
	}

	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title is required",
		})
	}

	if r.SalaryAmount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_amount",
			Message: "salary_amount must not be negative",
		})
	}

	if !validator.IsInSlice(r.PayCycle, []string{string(PayCycleMonthly), string(PayCycleBiWeekly), string(PayCycleWeekly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_cycle",
			Message: "pay_cycle must be one of monthly, bi_weekly, weekly",
		})
	}

	if _, ok := validator.IsValidDate(r.EmployDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "employ_date",
			Message: "employ_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string   `json:"-"`
	Gender       *string  `json:"gender,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	JobTitle     *string  `json:"job_title,omitempty"`
	Department   *string  `json:"department,omitempty"`
	SalaryAmount *float64 `json:"salary_amount,omitempty"`
	PayCycle     *string  `json:"pay_cycle,omitempty"`
	LastPaidAt   *string  `json:"last_paid_at,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{string(GenderFemale), string(GenderMale), string(GenderOther)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of female, male, other",
		})
	}

	if r.SalaryAmount != nil && *r.SalaryAmount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_amount",
			Message: "salary_amount must not be negative",
		})
	}

	if r.PayCycle != nil && !validator.IsInSlice(*r.PayCycle, []string{string(PayCycleMonthly), string(PayCycleBiWeekly), string(PayCycleWeekly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_cycle",
			Message: "pay_cycle must be one of monthly, bi_weekly, weekly",
		})
	}

	if r.LastPaidAt != nil {
		if _, ok := validator.IsValidDate(*r.LastPaidAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "last_paid_at",
				Message: "last_paid_at must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
