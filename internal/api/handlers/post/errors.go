package post

import (
	"errors"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/posts"
	"Quill/internal/core/validation"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	if valErr, ok := validation.AsValidationError(err); ok {
		handlers.WriteValidationError(w, valErr)
		return
	}

	switch {
	case errors.Is(err, posts.ErrAuthorNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found. Please re-login.")

	case errors.Is(err, posts.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case errors.Is(err, posts.ErrForbidden):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "Not authorized")

	default:
		// Don't leak internal error details to clients
		handlers.WriteInternalError(w, "Unexpected error in post handler", err)
	}
}

// writePostNotFound is used when the {id} parameter cannot name a post
func writePostNotFound(w http.ResponseWriter) {
	handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
}

// requireUser returns the authenticated user id, writing a 401 when absent
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return 0, false
	}
	return userID, true
}
