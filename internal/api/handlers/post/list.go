package post

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// ListHandler handles the public post listing
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleList handles GET /api/posts
// Response: JSON array of post summaries, newest first
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
