package http

import (
	"errors"
	"net/http"

	"github.com/vibeqa/auth-service/internal/service"
	"github.com/vibeqa/auth-service/internal/store"
	"github.com/vibeqa/auth-service/models"
)

// apiFailure pairs the HTTP status, machine-readable code, and client-facing
// message produced for a known domain error.
type apiFailure struct {
	status  int
	code    string
	message string
}

var errorFailureMap = map[error]apiFailure{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, models.CodeValidationError, "Invalid request data"},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, models.CodeInvalidCredentials, "Invalid credentials"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, models.CodeUnauthorized, msgInvalidOrExpiredToken},

	store.ErrEmailAlreadyExists: {http.StatusBadRequest, models.CodeEmailExists, "Email already registered"},
	store.ErrNoUserWasFound:     {http.StatusNotFound, models.CodeUserNotFound, "User not found"},

	store.ErrBuildingSQLQuery: {http.StatusInternalServerError, models.CodeInternalError, "Internal server error"},
	store.ErrExecutingQuery:   {http.StatusInternalServerError, models.CodeInternalError, "Internal server error"},
	store.ErrScanningRow:      {http.StatusInternalServerError, models.CodeInternalError, "Internal server error"},
}

// failureFromError resolves err to the envelope fields clients should see.
// Unknown errors collapse to the uniform 500 INTERNAL_ERROR failure so that
// infrastructure details never leak into responses.
func failureFromError(err error) apiFailure {
	for target, failure := range errorFailureMap {
		if errors.Is(err, target) {
			return failure
		}
	}
	return apiFailure{http.StatusInternalServerError, models.CodeInternalError, "Internal server error"}
}
