package http

import (
	"net/http"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/dashboard"
	"github.com/WolfOWI/coriander-backend-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler interface {
	AdminSummary(w http.ResponseWriter, r *http.Request)
	EmployeeProfile(w http.ResponseWriter, r *http.Request)
	MyProfile(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// AdminSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) AdminSummary(w http.ResponseWriter, r *http.Request) {
	adminID := userIDFromClaims(r)
	if adminID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	summary, err := h.dashboardService.GetAdminSummary(r.Context(), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// EmployeeProfile implements DashboardHandler.
func (h *DashboardHandlerImpl) EmployeeProfile(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	profile, err := h.dashboardService.GetEmployeeProfile(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// MyProfile implements DashboardHandler.
func (h *DashboardHandlerImpl) MyProfile(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromClaims(r)
	if employeeID == "" {
		response.Unauthorized(w, "Employee account required")
		return
	}

	profile, err := h.dashboardService.GetEmployeeProfile(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
