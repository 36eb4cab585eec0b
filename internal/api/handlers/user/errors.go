package user

import (
	"errors"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/users"
	"Quill/internal/core/validation"
)

// handleServiceError maps account errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	if valErr, ok := validation.AsValidationError(err); ok {
		handlers.WriteValidationError(w, valErr)
		return
	}

	switch {
	case users.IsConflict(err):
		handlers.WriteError(w, http.StatusConflict, "AlreadyExists", "Username or email already exists")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid credentials")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	default:
		handlers.WriteInternalError(w, "Account handler error", err)
	}
}
