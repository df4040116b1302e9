package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/dashboard"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/equipment"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/gathering"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employee.EmployeeRepository
	leave.LeaveBalanceRepository
	equipment.ItemRepository
	gatheringService gathering.GatheringService
}

func NewDashboardService(
	dashboardRepository dashboard.DashboardRepository,
	employeeRepository employee.EmployeeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	itemRepository equipment.ItemRepository,
	gatheringService gathering.GatheringService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository:    dashboardRepository,
		EmployeeRepository:     employeeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		ItemRepository:         itemRepository,
		gatheringService:       gatheringService,
	}
}

// GetAdminSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetAdminSummary(ctx context.Context, adminID string) (dashboard.AdminSummary, error) {
	total, suspended, err := s.DashboardRepository.CountEmployees(ctx)
	if err != nil {
		return dashboard.AdminSummary{}, fmt.Errorf("failed to count employees: %w", err)
	}

	pendingLeave, err := s.DashboardRepository.CountPendingLeaveRequests(ctx)
	if err != nil {
		return dashboard.AdminSummary{}, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	unassigned, err := s.DashboardRepository.CountUnassignedEquipment(ctx)
	if err != nil {
		return dashboard.AdminSummary{}, fmt.Errorf("failed to count unassigned equipment: %w", err)
	}

	status := gathering.CoarseStatusUpcoming
	upcoming, err := s.gatheringService.ListForAdmin(ctx, adminID, &status)
	if err != nil {
		return dashboard.AdminSummary{}, err
	}

	// Only this calendar month's entries belong on the landing page.
	now := time.Now()
	thisMonth := make([]gathering.Gathering, 0, len(upcoming))
	for _, g := range upcoming {
		if g.StartDate == nil {
			continue
		}
		if g.StartDate.Year() == now.Year() && g.StartDate.Month() == now.Month() {
			thisMonth = append(thisMonth, g)
		}
	}

	return dashboard.AdminSummary{
		EmployeeCount:        total,
		SuspendedCount:       suspended,
		PendingLeaveRequests: pendingLeave,
		UnassignedEquipment:  unassigned,
		UpcomingGatherings:   thisMonth,
	}, nil
}

// GetEmployeeProfile implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeProfile(ctx context.Context, employeeID string) (dashboard.EmployeeProfile, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeProfile{}, err
	}

	balances, err := s.LeaveBalanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeProfile{}, fmt.Errorf("failed to list leave balances: %w", err)
	}

	totals, err := s.LeaveBalanceRepository.SumByEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeProfile{}, fmt.Errorf("failed to sum leave balances: %w", err)
	}

	items, err := s.ItemRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeProfile{}, fmt.Errorf("failed to list equipment: %w", err)
	}

	return dashboard.EmployeeProfile{
		Employee:  emp,
		Balances:  balances,
		Totals:    totals,
		Equipment: items,
	}, nil
}
