package response

import (
	"errors"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/auth"
	"github.com/shiftline/shiftline-backend-go/internal/domain/payroll"
	"github.com/shiftline/shiftline-backend-go/internal/domain/safe"
	"github.com/shiftline/shiftline-backend-go/internal/domain/sales"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/domain/task"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
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
	case errors.Is(err, auth.ErrGoogleNotLinked):
		Forbidden(w, "No account linked to this Google identity")
	case errors.Is(err, auth.ErrGoogleDisabled):
		NotFound(w, "Google login is not available")
	case errors.Is(err, auth.ErrInvalidState):
		BadRequest(w, "OAuth state mismatch", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrManagerRoleRequired):
		Forbidden(w, "Manager role required")
	case errors.Is(err, user.ErrStoreOutsideScope):
		Forbidden(w, "Store is outside your scope")
	case errors.Is(err, user.ErrEmployeeOutsideScope):
		Forbidden(w, "Employee is outside your scope")
	case errors.Is(err, user.ErrUserHasNoStoreGranted):
		Forbidden(w, "No store granted")
	case errors.Is(err, user.ErrCannotDeactivateOneself):
		BadRequest(w, "Cannot deactivate your own account", nil)

	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, store.ErrStoreNameExists):
		Conflict(w, "Store name already exists")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAlreadyClockedIn):
		Conflict(w, "An open shift already exists")
	case errors.Is(err, shift.ErrNotClockedIn):
		Conflict(w, "No open shift to clock out of")
	case errors.Is(err, shift.ErrAlreadyClosed):
		Conflict(w, "Shift is already closed")
	case errors.Is(err, shift.ErrEndBeforeStart):
		BadRequest(w, "Shift end must not be before its start", nil)
	case errors.Is(err, shift.ErrNotPendingReview):
		Conflict(w, "Shift has no manual close awaiting review")
	case errors.Is(err, shift.ErrShiftNotOwnedByActor):
		Forbidden(w, "Shift belongs to another employee")

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, advance.ErrAdvanceAlreadyProcessed):
		Conflict(w, "Advance already verified or voided")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")
	case errors.Is(err, schedule.ErrEntryOverlaps):
		Conflict(w, "Schedule entry overlaps an existing slot")
	case errors.Is(err, schedule.ErrSourceUnhealthy):
		ServiceUnavailable(w, "Schedule source unavailable")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)
	case errors.Is(err, payroll.ErrMalformedShift):
		BadRequest(w, "Malformed shift row", nil)
	case errors.Is(err, payroll.ErrSnapshotFailed):
		ServiceUnavailable(w, "Payroll data sources unavailable")
	case errors.Is(err, payroll.ErrNothingToExport):
		NotFound(w, "No shifts in the requested period")

	// Safe domain errors
	case errors.Is(err, safe.ErrEntryNotFound):
		NotFound(w, "Safe entry not found")
	case errors.Is(err, safe.ErrDuplicateCount):
		Conflict(w, "A drawer count already exists for this day")

	// Sales domain errors
	case errors.Is(err, sales.ErrRecordNotFound):
		NotFound(w, "Sales record not found")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrTaskAlreadyDone):
		Conflict(w, "Task is already completed")
	case errors.Is(err, task.ErrNotAssignee):
		Forbidden(w, "Task is assigned to another employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
