package jwt

import (
	"context"
	"testing"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	employeeID := "emp-123"
	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "jane@example.com", &employeeID, user.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "emp-123", claims["employee_id"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_GenerateAccessToken_EmployeeRole(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	tokenString, _, err := svc.GenerateAccessToken("user-2", "joe@example.com", nil, user.RoleEmployee)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, false, claims["is_admin"])
	assert.Nil(t, claims["employee_id"])
}

func TestJWTService_GenerateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	tokenString, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])

	cookie := svc.RefreshTokenCookie(tokenString, expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, tokenString, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestJWTService_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", testRefreshExp)

	_, _, err := svc.GenerateAccessToken("user-1", "jane@example.com", nil, user.RoleEmployee)
	assert.Error(t, err)
}

func TestJWTService_RevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}
