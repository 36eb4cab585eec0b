package routes

import (
	"Quill/internal/api/handlers/comments"
	"Quill/internal/api/handlers/like"
	"Quill/internal/core/engagement"

	"github.com/go-chi/chi/v5"
)

// RegisterEngagementRoutes registers like and comment endpoints.
// None of them require authentication.
func RegisterEngagementRoutes(r chi.Router, service engagement.Service) {
	createLikeHandler := like.NewCreateLikeHandler(service)
	createCommentHandler := comments.NewCreateCommentHandler(service)
	getCommentsHandler := comments.NewGetCommentsHandler(service)

	r.Post("/posts/{id}/like", createLikeHandler.HandleCreateLike)
	r.Post("/posts/{id}/comments", createCommentHandler.HandleCreate)
	r.Get("/posts/{id}/comments", getCommentsHandler.HandleGetComments)
}
