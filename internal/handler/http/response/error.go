package response

import (
	"errors"
	"net/http"

	"github.com/guardhq/timesheet-backend-go/internal/domain/auth"
	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Role must be admin or staff", nil)
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		Conflict(w, "Cannot delete your own account")

	// Target domain errors
	case errors.Is(err, target.ErrTargetNotFound):
		NotFound(w, "Target not found")
	case errors.Is(err, target.ErrTargetNameExists):
		Conflict(w, "Target name already exists")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)
	case errors.Is(err, timesheet.ErrMonthNotFound):
		NotFound(w, "Timesheet month not found")
	case errors.Is(err, timesheet.ErrRowNotFound):
		NotFound(w, "Timesheet row not found")
	case errors.Is(err, timesheet.ErrNoActiveSelect):
		BadRequest(w, "No active selection", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
