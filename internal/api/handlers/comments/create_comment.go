package comments

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/engagement"
)

// CreateCommentHandler handles unauthenticated comment creation
type CreateCommentHandler struct {
	service engagement.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service engagement.Service) *CreateCommentHandler {
	return &CreateCommentHandler{
		service: service,
	}
}

// CreateCommentOutput is returned after a comment is stored
type CreateCommentOutput struct {
	Message   string `json:"message"`
	CommentID int64  `json:"commentId"`
}

// HandleCreate handles POST /api/posts/{id}/comments
// Request body: { "author": "...", "email": "...", "content": "..." }
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PostIDParam(r)
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
		return
	}

	var req engagement.AddCommentRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	commentID, err := h.service.AddComment(r.Context(), postID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, CreateCommentOutput{
		Message:   "Comment added successfully",
		CommentID: commentID,
	})
}
