package employee

import "time"

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// PayCycle maps to pay_cycle_enum in DB
type PayCycle string

const (
	PayCycleMonthly  PayCycle = "monthly"
	PayCycleBiWeekly PayCycle = "bi_weekly"
	PayCycleWeekly   PayCycle = "weekly"
)

// Employee holds the HR record behind a user with the employee role.
type Employee struct {
	ID     string
	UserID string

	Gender      Gender
	Phone       *string
	JobTitle    string
	Department  string
	SalaryAmount float64
	PayCycle    PayCycle
	LastPaidAt  *time.Time
	EmployDate  time.Time
	IsSuspended bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	FullName   *string
	Email      *string
	ProfileURL *string
}
