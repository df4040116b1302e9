package auth

import (
	"context"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (user.User, TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (user.User, TokenResponse, error)
	GoogleRedirectURL(userAgent string) string
	GoogleCallback(ctx context.Context, req GoogleCallbackRequest) (user.User, TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetCurrentUser(ctx context.Context, userID string) (user.User, error)
}
