package routes

import (
	"Quill/internal/api/handlers/user"
	"Quill/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers account endpoints. Both issue a token on success.
func RegisterAuthRoutes(r chi.Router, service users.UserService) {
	registerHandler := user.NewRegisterHandler(service)
	loginHandler := user.NewLoginHandler(service)

	r.Post("/auth/register", registerHandler.HandleRegister)
	r.Post("/auth/login", loginHandler.HandleLogin)
}
