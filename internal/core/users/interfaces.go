package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	// Create inserts a user; unique violations map to ErrUsernameTaken / ErrEmailTaken
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Exists reports whether a user row with this id is still present
	Exists(ctx context.Context, id int64) (bool, error)
}

// TokenIssuer signs bearer tokens for authenticated users
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	// Register creates an account and returns a token for it immediately
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}
