package posts

import (
	"context"

	"Quill/internal/core/engagement"
)

// Service defines the business logic interface for the post lifecycle
type Service interface {
	// CreatePost stores a post owned by the authenticated user
	// Flow: Validate -> Re-check author exists -> Derive excerpt -> Insert
	CreatePost(ctx context.Context, userID int64, req WritePostRequest) (*CreatePostResponse, error)

	// ListPosts returns every post newest first, with like and comment counts
	ListPosts(ctx context.Context) ([]*PostSummary, error)

	// GetPost returns the full post with its comments.
	// Every call counts as one view.
	GetPost(ctx context.Context, postID int64) (*PostDetail, error)

	// UpdatePost overwrites title, content and excerpt. Owner only.
	UpdatePost(ctx context.Context, postID, userID int64, req WritePostRequest) error

	// DeletePost removes the post; likes and comments cascade. Owner only.
	DeletePost(ctx context.Context, postID, userID int64) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and sets ID, Views and timestamps
	Create(ctx context.Context, post *Post) error

	// List returns all posts ordered by created_at DESC with aggregate counts
	List(ctx context.Context) ([]*PostSummary, error)

	// RecordView increments the view counter and returns the post detail
	// (without comments) in the same transaction. ErrNotFound if absent.
	RecordView(ctx context.Context, postID int64) (*PostDetail, error)

	// GetOwnerID returns the owning user id. ErrNotFound if absent.
	GetOwnerID(ctx context.Context, postID int64) (int64, error)

	// Update overwrites title/content/excerpt and bumps updated_at
	Update(ctx context.Context, post *Post) error

	// Delete removes the post row; FK cascades remove likes and comments
	Delete(ctx context.Context, postID int64) error

	// Exists reports whether a post with this id is present
	Exists(ctx context.Context, postID int64) (bool, error)
}

// AuthorChecker re-validates that a token's user still exists
type AuthorChecker interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// CommentLister supplies the comment listing for post detail views
type CommentLister interface {
	ListByPost(ctx context.Context, postID int64) ([]*engagement.Comment, error)
}
