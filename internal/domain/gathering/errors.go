package gathering

import "errors"

var (
	ErrInvalidMonth  = errors.New("month must be a number between 1 and 12")
	ErrInvalidStatus = errors.New("status must be one of upcoming, completed")
)
