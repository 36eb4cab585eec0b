package posts

import (
	"time"

	"Quill/internal/core/engagement"
)

// Post represents a stored blog post
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Excerpt   string    `json:"excerpt" db:"excerpt"`
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Views     int64     `json:"views" db:"views"`
}

// PostSummary is a post as it appears in the full listing.
// Likes and Comments are counts computed at query time.
type PostSummary struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Username  string    `json:"username"`
	ID        int64     `json:"id"`
	Views     int64     `json:"views"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
}

// PostDetail is the full view of a single post, including its comments
type PostDetail struct {
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Title        string                `json:"title"`
	Content      string                `json:"content"`
	Excerpt      string                `json:"excerpt"`
	Username     string                `json:"username"`
	Comments     []*engagement.Comment `json:"comments"`
	ID           int64                 `json:"id"`
	UserID       int64                 `json:"userId"`
	Views        int64                 `json:"views"`
	Likes        int                   `json:"likes"`
	CommentCount int                   `json:"commentCount"`
}

// WritePostRequest represents input for creating or updating a post.
// An empty Excerpt is derived from Content.
type WritePostRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	Excerpt string `json:"excerpt,omitempty" validate:"max=500"`
}

// CreatePostResponse represents the response from creating a post
type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  int64  `json:"postId"`
}
