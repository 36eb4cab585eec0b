package like

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/engagement"
)

// CreateLikeHandler handles anonymous likes
type CreateLikeHandler struct {
	service engagement.Service
}

// NewCreateLikeHandler creates a new create like handler
func NewCreateLikeHandler(service engagement.Service) *CreateLikeHandler {
	return &CreateLikeHandler{
		service: service,
	}
}

// HandleCreateLike records a like from the caller's source address
// POST /api/posts/{id}/like
//
// No request body. A second like from the same address returns 400.
func (h *CreateLikeHandler) HandleCreateLike(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PostIDParam(r)
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
		return
	}

	if err := h.service.LikePost(r.Context(), postID, middleware.SourceAddress(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, handlers.MessageResponse{Message: "Post liked successfully"})
}
