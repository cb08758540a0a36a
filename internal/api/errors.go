package api

import (
	"errors"
	"net/http"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Store-layer transient failures deliberately fall through to 500 so they
// are never conflated with client-error kinds.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRevokedToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrUsernameExists):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToCode maps internal errors to stable reason codes.
func MapErrorToCode(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return shared.CodeTokenMissing
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.CodeTokenExpired
	case errors.Is(err, auth.ErrRevokedToken):
		return shared.CodeTokenRevoked
	case errors.Is(err, auth.ErrInvalidToken):
		return shared.CodeTokenInvalid
	case errors.Is(err, store.ErrTaskNotFound), errors.Is(err, store.ErrUserNotFound):
		return shared.CodeTaskNotFound
	case errors.Is(err, store.ErrUsernameExists):
		return shared.CodeUsernameTaken
	case errors.Is(err, store.ErrInvalidEntity):
		return shared.CodeValidationError
	default:
		return shared.CodeInternalError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for the
// error. Internal detail never leaks to clients.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication token is missing"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Access token has expired"
	case errors.Is(err, auth.ErrRevokedToken):
		return "Access token has been revoked"
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid access token"
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"
	default:
		return "An unexpected error occurred"
	}
}
