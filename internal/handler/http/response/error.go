package response

import (
	"errors"
	"net/http"

	"github.com/klbeton/pointage-backend-go/internal/domain/advance"
	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/domain/auth"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/klbeton/pointage-backend-go/internal/domain/user"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/klbeton/pointage-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerRoleRequired):
		Forbidden(w, "Admin or chef role required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMatriculeExists):
		Conflict(w, "Matricule already registered")
	case errors.Is(err, employee.ErrInsufficientLeaveBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, employee.ErrInsufficientSickBalance):
		BadRequest(w, "Insufficient sick balance", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, advance.ErrAdvanceAlreadyProcessed):
		Conflict(w, "Advance already processed")

	// Calendar errors
	case errors.Is(err, calendar.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
