package engagement

import "errors"

var (
	// ErrPostNotFound indicates the post being liked or commented on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrDuplicateLike indicates this source address already liked the post
	ErrDuplicateLike = errors.New("already liked this post")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsConflict checks if an error is a duplicate engagement error
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateLike)
}
