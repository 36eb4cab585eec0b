package engagement

import "context"

// PostChecker validates that engagement targets exist.
// Implemented by the post repository.
type PostChecker interface {
	// Exists returns true if a post with this id is present
	Exists(ctx context.Context, postID int64) (bool, error)
}

// LikeRepository defines the data access interface for likes
type LikeRepository interface {
	// Create inserts a like. A repeat (post, source address) pair is reported as
	// ErrDuplicateLike by the storage uniqueness constraint, and a post removed
	// concurrently as ErrPostNotFound.
	Create(ctx context.Context, like *Like) error
}

// CommentRepository defines the data access interface for comments
type CommentRepository interface {
	// Create inserts a comment and sets its ID and CreatedAt
	Create(ctx context.Context, comment *Comment) error

	// ListByPost returns every comment on a post, newest first
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// Service defines the business logic interface for likes and comments
type Service interface {
	// LikePost records one like per post per source address
	LikePost(ctx context.Context, postID int64, sourceAddress string) error

	// AddComment validates and stores a comment, returning its id
	AddComment(ctx context.Context, postID int64, req AddCommentRequest) (int64, error)

	// ListComments returns all comments on a post, newest first.
	// Post existence is not checked; an unknown post yields an empty list.
	ListComments(ctx context.Context, postID int64) ([]*Comment, error)
}
