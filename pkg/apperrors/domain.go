package apperrors

import (
	"net/http"
)

// Factories and predefined variables for common business-logic errors.

// ErrNotFound converts a repository-level miss (gorm.ErrRecordNotFound or a
// repo sentinel) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Auth & account ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Caregivers ---

var ErrCaregiverProfileExists = New(
	CodeAlreadyExists,
	"caregiver",
	"Caregiver profile already exists for this user",
	http.StatusConflict,
)

var ErrCaregiverNotVerified = New(
	CodeInvalidOperation,
	"caregiver",
	"Caregiver is not verified",
	http.StatusBadRequest,
)

// --- Bookings ---

var ErrBookingTimeRange = New(
	CodeValidationFailed,
	"booking",
	"Booking start time must be before end time",
	http.StatusBadRequest,
)

var ErrBookingOverlap = New(
	CodeConflict,
	"booking",
	"Caregiver already has a booking in this time range",
	http.StatusConflict,
)

var ErrNoRateForService = New(
	CodeInvalidOperation,
	"booking",
	"Caregiver has no rate for the requested service",
	http.StatusBadRequest,
)

// ErrInvalidTransition covers every move the booking state machine rejects,
// including any attempt to leave a terminal state.
var ErrInvalidTransition = New(
	CodeInvalidStatus,
	"booking",
	"Booking status transition is not allowed",
	http.StatusConflict,
)

// --- Reviews ---

var ErrBookingNotCompleted = New(
	CodeInvalidOperation,
	"review",
	"Reviews can only be left for completed bookings",
	http.StatusBadRequest,
)

var ErrBookingAlreadyReviewed = New(
	CodeConflict,
	"review",
	"This booking has already been reviewed",
	http.StatusConflict,
)

// --- Uploads & files ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
