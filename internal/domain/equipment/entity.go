package equipment

import "time"

// Condition maps to equipment_condition_enum in DB
type Condition string

const (
	ConditionNew    Condition = "new"
	ConditionGood   Condition = "good"
	ConditionDecent Condition = "decent"
	ConditionUsed   Condition = "used"
)

// Category entity (laptops, monitors, headsets, ...)
type Category struct {
	ID   string
	Name string
}

// Item entity. EmployeeID is nil while the item sits in the unassigned pool.
type Item struct {
	ID         string
	CategoryID string
	Name       string
	AssetTag   string
	Condition  Condition
	EmployeeID *string
	AssignedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	CategoryName *string
	EmployeeName *string
}
