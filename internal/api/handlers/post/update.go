package post

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// UpdateHandler handles post edits by their owner
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{
		service: service,
	}
}

// HandleUpdate handles PUT /api/posts/{id}
// Request body: { "title": "...", "content": "...", "excerpt": "..." }
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	postID, ok := handlers.PostIDParam(r)
	if !ok {
		writePostNotFound(w)
		return
	}

	var req posts.WritePostRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdatePost(r.Context(), postID, userID, req); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.MessageResponse{Message: "Post updated successfully"})
}
