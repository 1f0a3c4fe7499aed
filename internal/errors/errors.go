package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotAuthenticated is returned when a vote or profile action has no session behind it.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAuthorized is returned when a non-admin attempts an admin-only mutation.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrAlreadyVoted is returned when a user votes twice for the same project.
	ErrAlreadyVoted = errors.New("already voted for this project")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCategory is returned when a category is outside the known set.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrStoreTimeout is returned when a store call exceeds its deadline.
	ErrStoreTimeout = errors.New("store call timed out")
	// ErrStoreUnavailable is returned on transient failure of the backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrNotAuthenticated.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrNotAuthorized):
		return NewHTTPError(http.StatusForbidden, ErrNotAuthorized.Error(), "NOT_AUTHORIZED")
	case errors.Is(err, ErrAlreadyVoted):
		return NewHTTPError(http.StatusConflict, ErrAlreadyVoted.Error(), "ALREADY_VOTED")
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, ErrProjectNotFound.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCategory):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidCategory.Error(), "INVALID_CATEGORY")
	case errors.Is(err, ErrStoreTimeout):
		return NewHTTPError(http.StatusGatewayTimeout, ErrStoreTimeout.Error(), "STORE_TIMEOUT")
	case errors.Is(err, ErrStoreUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrStoreUnavailable.Error(), "STORE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
