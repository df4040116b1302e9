package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/meeting"
	"github.com/WolfOWI/coriander-backend-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MeetingHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByAdmin(w http.ResponseWriter, r *http.Request)
	ListRequested(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Revert(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MeetingHandlerImpl struct {
	meetingService meeting.MeetingService
}

func NewMeetingHandler(meetingService meeting.MeetingService) MeetingHandler {
	return &MeetingHandlerImpl{meetingService: meetingService}
}

// Request implements MeetingHandler.
func (h *MeetingHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromClaims(r)
	if employeeID == "" {
		response.Unauthorized(w, "Employee account required")
		return
	}

	var req meeting.RequestMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Request meeting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	created, err := h.meetingService.RequestMeeting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Meeting requested successfully", created)
}

// Get implements MeetingHandler.
func (h *MeetingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	m, err := h.meetingService.GetMeeting(r.Context(), meetingID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, m)
}

// ListMine implements MeetingHandler.
func (h *MeetingHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromClaims(r)
	if employeeID == "" {
		response.Unauthorized(w, "Employee account required")
		return
	}

	meetings, err := h.meetingService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, meetings)
}

// ListByAdmin implements MeetingHandler.
func (h *MeetingHandlerImpl) ListByAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := userIDFromClaims(r)
	if adminID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	meetings, err := h.meetingService.ListByAdmin(r.Context(), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, meetings)
}

// ListRequested implements MeetingHandler.
func (h *MeetingHandlerImpl) ListRequested(w http.ResponseWriter, r *http.Request) {
	adminID := userIDFromClaims(r)
	if adminID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	meetings, err := h.meetingService.ListRequestedByAdmin(r.Context(), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, meetings)
}

// Confirm implements MeetingHandler.
func (h *MeetingHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	var req meeting.ConfirmMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Confirm meeting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = meetingID

	if err := h.meetingService.ConfirmMeeting(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting confirmed successfully", nil)
}

// Reject implements MeetingHandler.
func (h *MeetingHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	if err := h.meetingService.RejectMeeting(r.Context(), meetingID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting rejected", nil)
}

// Complete implements MeetingHandler.
func (h *MeetingHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	if err := h.meetingService.CompleteMeeting(r.Context(), meetingID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting marked as completed", nil)
}

// Revert implements MeetingHandler.
func (h *MeetingHandlerImpl) Revert(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	if err := h.meetingService.RevertToUpcoming(r.Context(), meetingID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting reverted to upcoming", nil)
}

// Update implements MeetingHandler.
func (h *MeetingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	var req meeting.UpdateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update meeting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = meetingID

	if err := h.meetingService.UpdateMeeting(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting updated successfully", nil)
}

// Delete implements MeetingHandler.
func (h *MeetingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	if err := h.meetingService.DeleteMeeting(r.Context(), meetingID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting deleted successfully", nil)
}
