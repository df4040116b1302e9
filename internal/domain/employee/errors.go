package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUserAlreadyLinked = errors.New("user already linked to an employee record")
)
