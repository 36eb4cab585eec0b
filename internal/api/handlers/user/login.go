package user

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/users"
)

// LoginHandler exchanges credentials for a bearer token
type LoginHandler struct {
	userService users.UserService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(userService users.UserService) *LoginHandler {
	return &LoginHandler{
		userService: userService,
	}
}

// HandleLogin handles POST /api/auth/login
// Unknown usernames and wrong passwords both return 401 with the same message.
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req users.LoginRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	response, err := h.userService.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
