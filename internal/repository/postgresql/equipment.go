package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/equipment"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type equipmentCategoryRepositoryImpl struct {
	db *database.DB
}

func NewEquipmentCategoryRepository(db *database.DB) equipment.CategoryRepository {
	return &equipmentCategoryRepositoryImpl{db: db}
}

// Create implements equipment.CategoryRepository.
func (r *equipmentCategoryRepositoryImpl) Create(ctx context.Context, category equipment.Category) (equipment.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO equipment_categories (id, name)
		VALUES (uuidv7(), $1)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, category.Name).Scan(&category.ID); err != nil {
		return equipment.Category{}, err
	}

	return category, nil
}

// GetByID implements equipment.CategoryRepository.
func (r *equipmentCategoryRepositoryImpl) GetByID(ctx context.Context, id string) (equipment.Category, error) {
	q := GetQuerier(ctx, r.db)

	var category equipment.Category
	err := q.QueryRow(ctx, `SELECT id, name FROM equipment_categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return equipment.Category{}, equipment.ErrCategoryNotFound
		}
		return equipment.Category{}, err
	}

	return category, nil
}

// List implements equipment.CategoryRepository.
func (r *equipmentCategoryRepositoryImpl) List(ctx context.Context) ([]equipment.Category, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM equipment_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]equipment.Category, 0)
	for rows.Next() {
		var category equipment.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}

type equipmentItemRepositoryImpl struct {
	db *database.DB
}

func NewEquipmentItemRepository(db *database.DB) equipment.ItemRepository {
	return &equipmentItemRepositoryImpl{db: db}
}

const itemSelectColumns = `
	ei.id, ei.category_id, ei.name, ei.asset_tag, ei.condition,
	ei.employee_id, ei.assigned_at, ei.created_at, ei.updated_at,
	ec.name AS category_name, u.full_name AS employee_name
`

const itemSelectJoins = `
	FROM equipment_items ei
	JOIN equipment_categories ec ON ei.category_id = ec.id
	LEFT JOIN employees e ON ei.employee_id = e.id
	LEFT JOIN users u ON e.user_id = u.id
`

func scanItem(row pgx.Row) (equipment.Item, error) {
	var item equipment.Item
	err := row.Scan(
		&item.ID, &item.CategoryID, &item.Name, &item.AssetTag, &item.Condition,
		&item.EmployeeID, &item.AssignedAt, &item.CreatedAt, &item.UpdatedAt,
		&item.CategoryName, &item.EmployeeName,
	)
	return item, err
}

// Create implements equipment.ItemRepository.
func (r *equipmentItemRepositoryImpl) Create(ctx context.Context, item equipment.Item) (equipment.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO equipment_items (id, category_id, name, asset_tag, condition, employee_id, assigned_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		item.CategoryID, item.Name, item.AssetTag, item.Condition,
		item.EmployeeID, item.AssignedAt,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return equipment.Item{}, err
	}

	return item, nil
}

// GetByID implements equipment.ItemRepository.
func (r *equipmentItemRepositoryImpl) GetByID(ctx context.Context, id string) (equipment.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + itemSelectColumns + itemSelectJoins + " WHERE ei.id = $1"

	item, err := scanItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return equipment.Item{}, equipment.ErrItemNotFound
		}
		return equipment.Item{}, err
	}

	return item, nil
}

// ListByEmployee implements equipment.ItemRepository.
func (r *equipmentItemRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]equipment.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + itemSelectColumns + itemSelectJoins +
		" WHERE ei.employee_id = $1 ORDER BY ec.name, ei.name"

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

// ListUnassigned implements equipment.ItemRepository.
func (r *equipmentItemRepositoryImpl) ListUnassigned(ctx context.Context) ([]equipment.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + itemSelectColumns + itemSelectJoins +
		" WHERE ei.employee_id IS NULL ORDER BY ec.name, ei.name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]equipment.Item, error) {
	items := make([]equipment.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Update implements equipment.ItemRepository.
func (r *equipmentItemRepositoryImpl) Update(ctx context.Context, req equipment.UpdateItemRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Condition != nil {
		updates["condition"] = *req.Condition
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for equipment update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE equipment_items SET " +
		strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return equipment.ErrItemNotFound
	}
	return nil
}

// Assign implements equipment.ItemRepository. The employee_id IS NULL guard
// means an already assigned item is never silently reassigned.
func (r *equipmentItemRepositoryImpl) Assign(ctx context.Context, itemID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE equipment_items
		SET employee_id = $1, assigned_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND employee_id IS NULL
	`

	commandTag, err := q.Exec(ctx, query, employeeID, itemID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return equipment.ErrItemAssigned
	}
	return nil
}

// Unassign implements equipment.ItemRepository.
func (r *equipmentItemRepositoryImpl) Unassign(ctx context.Context, itemID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE equipment_items
		SET employee_id = NULL, assigned_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, itemID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return equipment.ErrItemNotFound
	}
	return nil
}

// Delete implements equipment.ItemRepository.
func (r *equipmentItemRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM equipment_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return equipment.ErrItemNotFound
	}
	return nil
}
