package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}

// RefreshTokenRepository - interface for the refresh_tokens table
type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
