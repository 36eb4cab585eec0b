package comments

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/engagement"
	"Quill/internal/core/validation"
)

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	if valErr, ok := validation.AsValidationError(err); ok {
		handlers.WriteValidationError(w, valErr)
		return
	}

	switch {
	case engagement.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	default:
		handlers.WriteInternalError(w, "Comments handler error", err)
	}
}
