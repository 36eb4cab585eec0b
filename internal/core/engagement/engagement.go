package engagement

import (
	"time"
)

// DefaultSourceAddress is recorded when the caller's address cannot be determined
const DefaultSourceAddress = "0.0.0.0"

// Like represents an anonymous like on a post.
// (PostID, SourceAddress) is unique.
type Like struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	SourceAddress string    `json:"-" db:"ip_address"`
	ID            int64     `json:"id" db:"id"`
	PostID        int64     `json:"postId" db:"post_id"`
}

// Comment represents an append-only, unauthenticated comment on a post
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    string    `json:"author" db:"author"`
	Email     string    `json:"email" db:"email"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"-" db:"post_id"`
}

// AddCommentRequest represents input for commenting on a post
type AddCommentRequest struct {
	Author  string `json:"author" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Content string `json:"content" validate:"required"`
}
