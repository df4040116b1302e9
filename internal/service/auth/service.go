package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/auth"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/user"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/database"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/jwt"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/oauth"
	"github.com/WolfOWI/coriander-backend-sub000/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	user.RefreshTokenRepository
	employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	refreshTokenRepository user.RefreshTokenRepository,
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		EmployeeRepository:     employeeRepository,
		jwtService:             jwtService,
		googleService:          googleService,
	}
}

// Register implements auth.AuthService. Self-registration always creates an
// admin account; employee accounts are provisioned by an admin instead.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.User, auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, auth.TokenResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var (
		created       user.User
		tokenResponse auth.TokenResponse
	)
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		hash := string(passwordHash)
		newUser := user.User{
			FullName:     req.FullName,
			Email:        req.Email,
			PasswordHash: &hash,
			Role:         user.RoleAdmin,
		}
		if req.ProfileURL != "" {
			newUser.ProfileURL = &req.ProfileURL
		}

		created, err = a.UserRepository.Create(txCtx, newUser)
		if err != nil {
			return err
		}

		tokenResponse, err = a.issueTokens(txCtx, created)
		return err
	})
	if err != nil {
		return user.User{}, auth.TokenResponse{}, err
	}

	slog.Info("user registered", "user_id", created.ID, "email", created.Email)
	return created, tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (user.User, auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return user.User{}, auth.TokenResponse{}, err
	}

	if userData.PasswordHash == nil {
		return user.User{}, auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return user.User{}, auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		tokenResponse, err = a.issueTokens(txCtx, userData)
		return err
	})
	if err != nil {
		return user.User{}, auth.TokenResponse{}, err
	}

	return userData, tokenResponse, nil
}

// GoogleRedirectURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleRedirectURL(userAgent string) string {
	state := a.googleService.GenerateState(userAgent)
	return a.googleService.RedirectURL(state)
}

// GoogleCallback implements auth.AuthService. First sign-in provisions an
// admin account keyed by the Google subject; later sign-ins match on it.
func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, req auth.GoogleCallbackRequest) (user.User, auth.TokenResponse, error) {
	token, err := a.googleService.ExchangeCode(ctx, req.Code)
	if err != nil {
		return user.User{}, auth.TokenResponse{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	googleUser, err := a.googleService.FetchUser(ctx, token)
	if err != nil {
		return user.User{}, auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}

	userData, err := a.UserRepository.GetByGoogleID(ctx, googleUser.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, auth.TokenResponse{}, err
		}

		// Link by email when the account exists without a Google identity,
		// otherwise provision a fresh one.
		existing, emailErr := a.UserRepository.GetByEmail(ctx, googleUser.Email)
		switch {
		case emailErr == nil:
			existing.GoogleID = &googleUser.GoogleID
			if err := a.UserRepository.Update(ctx, existing); err != nil {
				return user.User{}, auth.TokenResponse{}, err
			}
			userData = existing
		case errors.Is(emailErr, user.ErrUserNotFound):
			newUser := user.User{
				FullName: googleUser.Name,
				Email:    googleUser.Email,
				GoogleID: &googleUser.GoogleID,
				Role:     user.RoleAdmin,
			}
			if googleUser.Picture != "" {
				newUser.ProfileURL = &googleUser.Picture
			}
			userData, err = a.UserRepository.Create(ctx, newUser)
			if err != nil {
				return user.User{}, auth.TokenResponse{}, err
			}
		default:
			return user.User{}, auth.TokenResponse{}, emailErr
		}
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		tokenResponse, err = a.issueTokens(txCtx, userData)
		return err
	})
	if err != nil {
		return user.User{}, auth.TokenResponse{}, err
	}

	return userData, tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	stored, err := a.RefreshTokenRepository.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, user.ErrRefreshTokenNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, err
	}

	if stored.Revoked || a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.AccessTokenResponse{}, auth.ErrTokenExpired
	}

	userData, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(
		userData.ID, userData.Email, a.employeeIDFor(ctx, userData), userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

// GetCurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) GetCurrentUser(ctx context.Context, userID string) (user.User, error) {
	return a.UserRepository.GetByID(ctx, userID)
}

// issueTokens mints an access/refresh token pair and persists the refresh
// token for rotation.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(
		userData.ID, userData.Email, a.employeeIDFor(ctx, userData), userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.RefreshTokenRepository.Store(ctx, user.RefreshToken{
		UserID:    userData.ID,
		Token:     refreshToken,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	tokenResponse = auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}
	return tokenResponse, nil
}

// employeeIDFor resolves the employee record id carried in access token
// claims. Admins have none.
func (a *AuthServiceImpl) employeeIDFor(ctx context.Context, userData user.User) *string {
	if userData.Role != user.RoleEmployee {
		return nil
	}
	emp, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
	if err != nil {
		return nil
	}
	return &emp.ID
}
