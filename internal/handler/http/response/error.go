package response

import (
	"errors"
	"net/http"

	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/auth"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/employee"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/equipment"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/gathering"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/leave"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/meeting"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/review"
	"github.com/WolfOWI/coriander-backend-sub000/internal/domain/user"
	"github.com/WolfOWI/coriander-backend-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrRefreshTokenNotFound):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUserAlreadyLinked):
		Conflict(w, "User already linked to an employee record")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Equipment domain errors
	case errors.Is(err, equipment.ErrCategoryNotFound):
		NotFound(w, "Equipment category not found")
	case errors.Is(err, equipment.ErrItemNotFound):
		NotFound(w, "Equipment item not found")
	case errors.Is(err, equipment.ErrItemAssigned):
		Conflict(w, "Equipment item already assigned")

	// Meeting domain errors
	case errors.Is(err, meeting.ErrMeetingNotFound):
		NotFound(w, "Meeting not found")
	case errors.Is(err, meeting.ErrMeetingNotRequested):
		Conflict(w, "Meeting is not in requested state")
	case errors.Is(err, meeting.ErrMeetingNotCompleted):
		Conflict(w, "Meeting is not in completed state")

	// Review domain errors
	case errors.Is(err, review.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, review.ErrInvalidRating):
		BadRequest(w, err.Error(), nil)

	// Gathering domain errors
	case errors.Is(err, gathering.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, gathering.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
