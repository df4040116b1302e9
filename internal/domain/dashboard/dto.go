package dashboard

import (
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/equipment"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/gathering"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
)

// AdminSummary is the admin landing page aggregate.
type AdminSummary struct {
	EmployeeCount        int64                 `json:"employee_count"`
	SuspendedCount       int64                 `json:"suspended_count"`
	PendingLeaveRequests int64                 `json:"pending_leave_requests"`
	UnassignedEquipment  int64                 `json:"unassigned_equipment"`
	UpcomingGatherings   []gathering.Gathering `json:"upcoming_gatherings"`
}

// EmployeeProfile is the employee detail page aggregate: the record itself
// plus leave totals and currently assigned equipment.
type EmployeeProfile struct {
	Employee  employee.Employee    `json:"employee"`
	Balances  []leave.LeaveBalance `json:"leave_balances"`
	Totals    leave.BalanceTotals  `json:"leave_totals"`
	Equipment []equipment.Item     `json:"equipment"`
}
