package users

import (
	"errors"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering a username that already exists
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned by Login for an unknown username or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsConflict checks if err reports a username or email collision
func IsConflict(err error) bool {
	return errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken)
}
