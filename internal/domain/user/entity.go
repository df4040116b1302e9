package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User is the authentication identity behind an admin or an employee.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash *string
	GoogleID     *string
	ProfileURL   *string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken is a persisted refresh token for session rotation.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Revoked   bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
