package users

import (
	"time"
)

// User represents a registered author
// Rows are immutable after registration
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ID           int64     `json:"id" db:"id"`
}

// RegisterRequest represents the input for creating a new account
// Password is also capped at MaxPasswordBytes by Register
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// MaxPasswordBytes is bcrypt's input limit. Multibyte characters count once per byte.
const MaxPasswordBytes = 72

// LoginRequest represents the input for exchanging credentials for a token
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserRef is the public identity returned alongside tokens
type UserRef struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// AuthResponse is returned by Register and Login
type AuthResponse struct {
	Message string  `json:"message,omitempty"`
	Token   string  `json:"token"`
	User    UserRef `json:"user"`
}
