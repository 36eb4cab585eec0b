package posts

import (
	"errors"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post is not found by id
	ErrNotFound = errors.New("post not found")

	// ErrForbidden is returned when the caller is authenticated but does not own the post
	ErrForbidden = errors.New("not authorized to modify this post")

	// ErrAuthorNotFound is returned when the authenticated user no longer exists
	// (a token issued before the account disappeared)
	ErrAuthorNotFound = errors.New("user not found, please re-login")
)

