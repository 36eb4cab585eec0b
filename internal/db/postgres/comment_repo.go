package postgres

import (
	"Quill/internal/core/engagement"
	"context"
	"database/sql"
	"fmt"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) engagement.CommentRepository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *engagement.Comment) error {
	query := `
		INSERT INTO comments (post_id, author, email, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		comment.PostID, comment.Author, comment.Email, comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		// Post deleted between the existence check and the insert
		if isForeignKeyViolation(err, "fk_comment_post") {
			return engagement.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// ListByPost returns every comment on a post, newest first.
// Ties on created_at fall back to id so the order is stable.
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*engagement.Comment, error) {
	query := `
		SELECT id, post_id, author, email, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer closeRows(rows)

	result := []*engagement.Comment{}
	for rows.Next() {
		var comment engagement.Comment
		if err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.Author,
			&comment.Email, &comment.Content, &comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}
