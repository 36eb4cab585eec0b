package post

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// GetHandler handles single post reads
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// HandleGet handles GET /api/posts/{id}
// Every successful call counts as a view.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PostIDParam(r)
	if !ok {
		writePostNotFound(w)
		return
	}

	detail, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, detail)
}
