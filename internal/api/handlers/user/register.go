package user

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/users"
)

// RegisterHandler handles account creation
type RegisterHandler struct {
	userService users.UserService
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(userService users.UserService) *RegisterHandler {
	return &RegisterHandler{
		userService: userService,
	}
}

// HandleRegister handles POST /api/auth/register
// Request body: { "username": "...", "email": "...", "password": "..." }
// Response: 201 { "message": "...", "token": "...", "user": { "id": 1, "username": "..." } }
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	response, err := h.userService.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, response)
}
