package routes

import (
	"net/http"

	"Quill/internal/api/middleware"
	"Quill/internal/core/engagement"
	"Quill/internal/core/posts"
	"Quill/internal/core/users"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Services groups everything the HTTP surface depends on
type Services struct {
	Users          users.UserService
	Posts          posts.Service
	Engagement     engagement.Service
	Auth           *middleware.AuthMiddleware
	DB             Pinger
	AllowedOrigins []string
}

// NewRouter mounts every endpoint under /api
func NewRouter(s Services) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(CORS(s.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		RegisterHealthRoutes(r, s.DB)
		RegisterAuthRoutes(r, s.Users)
		RegisterPostRoutes(r, s.Posts, s.Auth)
		RegisterEngagementRoutes(r, s.Engagement)
	})

	return r
}
