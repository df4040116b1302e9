package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// employeeIDFromClaims pulls the caller's employee record id out of the
// access token. Empty for admins.
func employeeIDFromClaims(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	employeeID, _ := claims["employee_id"].(string)
	return employeeID
}

// userIDFromClaims pulls the caller's user id out of the access token.
func userIDFromClaims(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
