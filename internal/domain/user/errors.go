package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrRefreshTokenNotFound   = errors.New("refresh token not found")
)
