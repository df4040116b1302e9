package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/auth"
	"github.com/WolfOWI/coriander-backend-sub000/internal/handler/http/response"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GoogleRedirect(w http.ResponseWriter, r *http.Request)
	GoogleCallback(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

type userResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	ProfileURL *string `json:"profile_url,omitempty"`
	Role       string  `json:"role"`
}

// Register implements AuthHandler.
func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userData, tokens, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))

	response.Created(w, "Account registered successfully", map[string]interface{}{
		"user": userResponse{
			ID:         userData.ID,
			FullName:   userData.FullName,
			Email:      userData.Email,
			ProfileURL: userData.ProfileURL,
			Role:       string(userData.Role),
		},
		"tokens": tokens,
	})
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userData, tokens, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))

	response.SuccessWithMessage(w, "Logged in successfully", map[string]interface{}{
		"user": userResponse{
			ID:         userData.ID,
			FullName:   userData.FullName,
			Email:      userData.Email,
			ProfileURL: userData.ProfileURL,
			Role:       string(userData.Role),
		},
		"tokens": tokens,
	})
}

// GoogleRedirect implements AuthHandler.
func (h *AuthHandlerImpl) GoogleRedirect(w http.ResponseWriter, r *http.Request) {
	url := h.authService.GoogleRedirectURL(r.UserAgent())
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallback implements AuthHandler.
func (h *AuthHandlerImpl) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	req := auth.GoogleCallbackRequest{
		Code:  r.URL.Query().Get("code"),
		State: r.URL.Query().Get("state"),
	}
	if req.Code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	userData, tokens, err := h.authService.GoogleCallback(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))

	response.SuccessWithMessage(w, "Logged in with Google successfully", map[string]interface{}{
		"user": userResponse{
			ID:         userData.ID,
			FullName:   userData.FullName,
			Email:      userData.Email,
			ProfileURL: userData.ProfileURL,
			Role:       string(userData.Role),
		},
		"tokens": tokens,
	})
}

// Refresh implements AuthHandler.
func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := h.refreshTokenFrom(r)
	if refreshToken == "" {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	tokens, err := h.authService.RefreshToken(r.Context(), refreshToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokens)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := h.refreshTokenFrom(r)
	if refreshToken == "" {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie
	cookie := h.jwtService.RefreshTokenCookie("", 0)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// Me implements AuthHandler.
func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	userData, err := h.authService.GetCurrentUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, userResponse{
		ID:         userData.ID,
		FullName:   userData.FullName,
		Email:      userData.Email,
		ProfileURL: userData.ProfileURL,
		Role:       string(userData.Role),
	})
}

// refreshTokenFrom reads the refresh token from the cookie, falling back to
// the request body for clients that do not hold cookies.
func (h *AuthHandlerImpl) refreshTokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req auth.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}
