package equipment

import (
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

type CreateItemRequest struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"equipment_name"`
	Condition  string  `json:"condition"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "equipment_name",
			Message: "equipment_name is required",
		})
	}

	if !validator.IsInSlice(r.Condition, []string{
		string(ConditionNew), string(ConditionGood), string(ConditionDecent), string(ConditionUsed),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "condition",
			Message: "condition must be one of new, good, decent, used",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateItemRequest struct {
	ID         string  `json:"-"`
	CategoryID *string `json:"category_id,omitempty"`
	Name       *string `json:"equipment_name,omitempty"`
	Condition  *string `json:"condition,omitempty"`
}

func (r *UpdateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "equipment_id",
			Message: "equipment_id is required",
		})
	}

	if r.Condition != nil && !validator.IsInSlice(*r.Condition, []string{
		string(ConditionNew), string(ConditionGood), string(ConditionDecent), string(ConditionUsed),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "condition",
			Message: "condition must be one of new, good, decent, used",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignItemRequest struct {
	ItemID     string `json:"equipment_id"`
	EmployeeID string `json:"employee_id"`
}

func (r *AssignItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ItemID) {
		errs = append(errs, validator.ValidationError{
			Field:   "equipment_id",
			Message: "equipment_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
