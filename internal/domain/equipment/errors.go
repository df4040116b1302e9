package equipment

import "errors"

var (
	ErrItemNotFound     = errors.New("equipment item not found")
	ErrCategoryNotFound = errors.New("equipment category not found")
	ErrItemAssigned     = errors.New("equipment item already assigned")
)
