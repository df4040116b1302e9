package equipment

import "context"

// CategoryRepository - interface for the equipment_categories table
type CategoryRepository interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	List(ctx context.Context) ([]Category, error)
}

// ItemRepository - interface for the equipment_items table
type ItemRepository interface {
	Create(ctx context.Context, item Item) (Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Item, error)
	ListUnassigned(ctx context.Context) ([]Item, error)
	Update(ctx context.Context, req UpdateItemRequest) error
	Assign(ctx context.Context, itemID, employeeID string) error
	Unassign(ctx context.Context, itemID string) error
	Delete(ctx context.Context, id string) error
}
