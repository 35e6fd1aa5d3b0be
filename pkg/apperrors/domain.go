package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the marketplace domains.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth ---

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
	"An account with this email already exists",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

// --- Creators ---

var ErrCreatorNotFound = New(
	CodeNotFound,
	"creators",
	"Creator profile not found",
	http.StatusNotFound,
)

var ErrCreatorProfileExists = New(
	CodeAlreadyExists,
	"creators",
	"A creator profile is already linked to this account",
	http.StatusConflict,
)

var ErrNeedsOnboarding = New(
	CodeInvalidStatus,
	"creators",
	"No creator profile linked to this account yet",
	http.StatusConflict,
)

// ErrTagQuotaReached signals the advisory tier limit. No write happened.
func ErrTagQuotaReached(tier string, quota int) *AppError {
	return New(
		CodeLimitExceeded,
		"membership",
		"Tier limit reached: upgrade to activate more tags",
		http.StatusConflict,
	).WithDetails(map[string]interface{}{"tier": tier, "quota": quota})
}

// --- Jobs & applications ---

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job brief not found",
	http.StatusNotFound,
)

var ErrDuplicateApplication = New(
	CodeConflict,
	"applications",
	"You have already applied to this job",
	http.StatusConflict,
)

// --- Membership ---

var ErrPlanNotFound = New(
	CodeNotFound,
	"membership",
	"Membership plan not found",
	http.StatusNotFound,
)
