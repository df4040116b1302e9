package equipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/equipment"
	"github.com/google/uuid"
)

type EquipmentServiceImpl struct {
	equipment.CategoryRepository
	equipment.ItemRepository
	employee.EmployeeRepository
}

func NewEquipmentService(
	categoryRepository equipment.CategoryRepository,
	itemRepository equipment.ItemRepository,
	employeeRepository employee.EmployeeRepository,
) equipment.EquipmentService {
	return &EquipmentServiceImpl{
		CategoryRepository: categoryRepository,
		ItemRepository:     itemRepository,
		EmployeeRepository: employeeRepository,
	}
}

// CreateCategory implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) CreateCategory(ctx context.Context, name string) (equipment.Category, error) {
	created, err := s.CategoryRepository.Create(ctx, equipment.Category{Name: name})
	if err != nil {
		return equipment.Category{}, fmt.Errorf("failed to create equipment category: %w", err)
	}
	return created, nil
}

// ListCategories implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) ListCategories(ctx context.Context) ([]equipment.Category, error) {
	return s.CategoryRepository.List(ctx)
}

// CreateItem implements equipment.EquipmentService. The asset tag is minted
// here from the category name and a random suffix.
func (s *EquipmentServiceImpl) CreateItem(ctx context.Context, req equipment.CreateItemRequest) (equipment.Item, error) {
	if err := req.Validate(); err != nil {
		return equipment.Item{}, err
	}

	category, err := s.CategoryRepository.GetByID(ctx, req.CategoryID)
	if err != nil {
		return equipment.Item{}, err
	}

	item := equipment.Item{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		AssetTag:   mintAssetTag(category.Name),
		Condition:  equipment.Condition(req.Condition),
	}

	if req.EmployeeID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.EmployeeID); err != nil {
			return equipment.Item{}, err
		}
		item.EmployeeID = req.EmployeeID
		now := time.Now()
		item.AssignedAt = &now
	}

	created, err := s.ItemRepository.Create(ctx, item)
	if err != nil {
		return equipment.Item{}, fmt.Errorf("failed to create equipment item: %w", err)
	}

	return created, nil
}

func mintAssetTag(categoryName string) string {
	prefix := strings.ToUpper(strings.ReplaceAll(categoryName, " ", ""))
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:8]))
}

// GetItem implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) GetItem(ctx context.Context, id string) (equipment.Item, error) {
	return s.ItemRepository.GetByID(ctx, id)
}

// ListByEmployee implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]equipment.Item, error) {
	return s.ItemRepository.ListByEmployee(ctx, employeeID)
}

// ListUnassigned implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) ListUnassigned(ctx context.Context) ([]equipment.Item, error) {
	return s.ItemRepository.ListUnassigned(ctx)
}

// UpdateItem implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) UpdateItem(ctx context.Context, req equipment.UpdateItemRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.ItemRepository.Update(ctx, req)
}

// AssignItem implements equipment.EquipmentService. Assigning an item that is
// already held by someone fails rather than silently reassigning.
func (s *EquipmentServiceImpl) AssignItem(ctx context.Context, req equipment.AssignItemRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.ItemRepository.GetByID(ctx, req.ItemID); err != nil {
		return err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	return s.ItemRepository.Assign(ctx, req.ItemID, req.EmployeeID)
}

// UnassignItem implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) UnassignItem(ctx context.Context, itemID string) error {
	return s.ItemRepository.Unassign(ctx, itemID)
}

// DeleteItem implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) DeleteItem(ctx context.Context, id string) error {
	return s.ItemRepository.Delete(ctx, id)
}
