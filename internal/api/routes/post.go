package routes

import (
	"Quill/internal/api/handlers/post"
	"Quill/internal/api/middleware"
	"Quill/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the post lifecycle endpoints on the router.
// Reads are public; writes require a bearer token.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	// Initialize handlers
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Get("/posts", listHandler.HandleList)
	r.Get("/posts/{id}", getHandler.HandleGet)

	// Only the author may update or delete a post
	r.With(authMiddleware.RequireAuth).Post("/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/posts/{id}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{id}", deleteHandler.HandleDelete)
}
