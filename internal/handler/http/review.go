package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/review"
	"github.com/WolfOWI/coriander-backend-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReviewHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListByAdmin(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReviewHandlerImpl struct {
	reviewService review.ReviewService
}

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &ReviewHandlerImpl{reviewService: reviewService}
}

// Create implements ReviewHandler.
func (h *ReviewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	adminID := userIDFromClaims(r)
	if adminID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req review.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdminID = adminID

	created, err := h.reviewService.CreateReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review scheduled successfully", created)
}

// Get implements ReviewHandler.
func (h *ReviewHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	rev, err := h.reviewService.GetReview(r.Context(), reviewID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rev)
}

// ListByEmployee implements ReviewHandler.
func (h *ReviewHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	reviews, err := h.reviewService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// ListByAdmin implements ReviewHandler.
func (h *ReviewHandlerImpl) ListByAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := userIDFromClaims(r)
	if adminID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	reviews, err := h.reviewService.ListByAdmin(r.Context(), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// Update implements ReviewHandler.
func (h *ReviewHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	var req review.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = reviewID

	if err := h.reviewService.UpdateReview(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated successfully", nil)
}

type completeReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// Complete implements ReviewHandler.
func (h *ReviewHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	var req completeReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Complete review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.reviewService.CompleteReview(r.Context(), reviewID, req.Rating, req.Comment); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review completed", nil)
}

// Delete implements ReviewHandler.
func (h *ReviewHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), reviewID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted successfully", nil)
}
