package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/equipment"
	"github.com/WolfOWI/coriander-backend-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EquipmentHandler interface {
	CreateCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)

	CreateItem(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListUnassigned(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	AssignItem(w http.ResponseWriter, r *http.Request)
	UnassignItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
}

type EquipmentHandlerImpl struct {
	equipmentService equipment.EquipmentService
}

func NewEquipmentHandler(equipmentService equipment.EquipmentService) EquipmentHandler {
	return &EquipmentHandlerImpl{equipmentService: equipmentService}
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory implements EquipmentHandler.
func (h *EquipmentHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateCategory decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Category name is required", nil)
		return
	}

	category, err := h.equipmentService.CreateCategory(r.Context(), req.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Equipment category created successfully", category)
}

// ListCategories implements EquipmentHandler.
func (h *EquipmentHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.equipmentService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, categories)
}

// CreateItem implements EquipmentHandler.
func (h *EquipmentHandlerImpl) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req equipment.CreateItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateItem decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := h.equipmentService.CreateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Equipment item created successfully", item)
}

// GetItem implements EquipmentHandler.
func (h *EquipmentHandlerImpl) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.BadRequest(w, "Equipment ID is required", nil)
		return
	}

	item, err := h.equipmentService.GetItem(r.Context(), itemID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// ListByEmployee implements EquipmentHandler.
func (h *EquipmentHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	items, err := h.equipmentService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// ListMine implements EquipmentHandler.
func (h *EquipmentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromClaims(r)
	if employeeID == "" {
		response.Unauthorized(w, "Employee account required")
		return
	}

	items, err := h.equipmentService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// ListUnassigned implements EquipmentHandler.
func (h *EquipmentHandlerImpl) ListUnassigned(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipmentService.ListUnassigned(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// UpdateItem implements EquipmentHandler.
func (h *EquipmentHandlerImpl) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.BadRequest(w, "Equipment ID is required", nil)
		return
	}

	var req equipment.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateItem decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = itemID

	if err := h.equipmentService.UpdateItem(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment item updated successfully", nil)
}

// AssignItem implements EquipmentHandler.
func (h *EquipmentHandlerImpl) AssignItem(w http.ResponseWriter, r *http.Request) {
	var req equipment.AssignItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignItem decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.equipmentService.AssignItem(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment assigned successfully", nil)
}

// UnassignItem implements EquipmentHandler.
func (h *EquipmentHandlerImpl) UnassignItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.BadRequest(w, "Equipment ID is required", nil)
		return
	}

	if err := h.equipmentService.UnassignItem(r.Context(), itemID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment unassigned successfully", nil)
}

// DeleteItem implements EquipmentHandler.
func (h *EquipmentHandlerImpl) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.BadRequest(w, "Equipment ID is required", nil)
		return
	}

	if err := h.equipmentService.DeleteItem(r.Context(), itemID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment item deleted successfully", nil)
}
