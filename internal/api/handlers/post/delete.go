package post

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{
		service: service,
	}
}

// HandleDelete handles DELETE /api/posts/{id}
// Likes and comments go with the post.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	postID, ok := handlers.PostIDParam(r)
	if !ok {
		writePostNotFound(w)
		return
	}

	if err := h.service.DeletePost(r.Context(), postID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.MessageResponse{Message: "Post deleted successfully"})
}
