package like

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/engagement"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case engagement.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case engagement.IsConflict(err):
		handlers.WriteError(w, http.StatusBadRequest, "AlreadyLiked", "Already liked this post")
	default:
		handlers.WriteInternalError(w, "Like creation error", err)
	}
}
