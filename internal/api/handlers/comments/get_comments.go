package comments

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/engagement"
)

// GetCommentsHandler lists the comments on a post
type GetCommentsHandler struct {
	service engagement.Service
}

// NewGetCommentsHandler creates a new handler for listing comments
func NewGetCommentsHandler(service engagement.Service) *GetCommentsHandler {
	return &GetCommentsHandler{
		service: service,
	}
}

// HandleGetComments handles GET /api/posts/{id}/comments
// An id that names no post yields an empty array, not a 404.
func (h *GetCommentsHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PostIDParam(r)
	if !ok {
		handlers.WriteJSON(w, http.StatusOK, []*engagement.Comment{})
		return
	}

	result, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
