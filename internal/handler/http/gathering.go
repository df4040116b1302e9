package http

import (
	"net/http"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/gathering"
	"github.com/WolfOWI/coriander-backend-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type GatheringHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForAdmin(w http.ResponseWriter, r *http.Request)
	ListMyScheduled(w http.ResponseWriter, r *http.Request)
	ListScheduledForAdmin(w http.ResponseWriter, r *http.Request)
	ListForAdminByMonth(w http.ResponseWriter, r *http.Request)
}

type GatheringHandlerImpl struct {
	gatheringService gathering.GatheringService
}

func NewGatheringHandler(gatheringService gathering.GatheringService) GatheringHandler {
	return &GatheringHandlerImpl{gatheringService: gatheringService}
}

// coarseStatusFromQuery reads the optional status query parameter. A nil
// result means no filtering.
func coarseStatusFromQuery(r *http.Request) (*gathering.CoarseStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}

	status := gathering.CoarseStatus(raw)
	switch status {
	case gathering.CoarseStatusUpcoming, gathering.CoarseStatusCompleted:
		return &status, nil
	default:
		return nil, gathering.ErrInvalidStatus
	}
}

// ListMine implements GatheringHandler.
func (h *GatheringHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromClaims(r)
	if employeeID == "" {
		response.Unauthorized(w, "Employee account required")
		return
	}

	status, err := coarseStatusFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	gatherings, err := h.gatheringService.ListForEmployee(r.Context(), employeeID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, gatherings)
}

// ListForAdmin implements GatheringHandler.
func (h *GatheringHandlerImpl) ListForAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := userIDFromClaims(r)
	if adminID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	status, err := coarseStatusFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	gatherings, err := h.gatheringService.ListForAdmin(r.Context(), adminID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, gatherings)
}

// ListMyScheduled implements GatheringHandler.
func (h *GatheringHandlerImpl) ListMyScheduled(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromClaims(r)
	if employeeID == "" {
		response.Unauthorized(w, "Employee account required")
		return
	}

	gatherings, err := h.gatheringService.ListScheduledForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, gatherings)
}

// ListScheduledForAdmin implements GatheringHandler.
func (h *GatheringHandlerImpl) ListScheduledForAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := userIDFromClaims(r)
	if adminID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	gatherings, err := h.gatheringService.ListScheduledForAdmin(r.Context(), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, gatherings)
}

// ListForAdminByMonth implements GatheringHandler.
func (h *GatheringHandlerImpl) ListForAdminByMonth(w http.ResponseWriter, r *http.Request) {
	adminID := userIDFromClaims(r)
	if adminID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	month := chi.URLParam(r, "month")
	if month == "" {
		response.BadRequest(w, "Month is required", nil)
		return
	}

	gatherings, err := h.gatheringService.ListForAdminByMonth(r.Context(), adminID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, gatherings)
}
