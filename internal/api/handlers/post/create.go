package post

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/posts
// Request body: { "title": "...", "content": "...", "excerpt": "..." }
// Response: 201 { "message": "...", "postId": 1 }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Injected by auth middleware
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req posts.WritePostRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	response, err := h.service.CreatePost(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, response)
}
