package equipment

import (
	"context"
)

type EquipmentService interface {
	// Category
	CreateCategory(ctx context.Context, name string) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	// Item
	CreateItem(ctx context.Context, req CreateItemRequest) (Item, error)
	GetItem(ctx context.Context, id string) (Item, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Item, error)
	ListUnassigned(ctx context.Context) ([]Item, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) error
	AssignItem(ctx context.Context, req AssignItemRequest) error
	UnassignItem(ctx context.Context, itemID string) error
	DeleteItem(ctx context.Context, id string) error
}
