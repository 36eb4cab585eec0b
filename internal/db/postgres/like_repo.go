package postgres

import (
	"Quill/internal/core/engagement"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) engagement.LikeRepository {
	return &postgresLikeRepo{db: db}
}

// Create inserts a like for (post, source address).
// The unique_like constraint decides duplicates; concurrent requests from the
// same address cannot both succeed.
func (r *postgresLikeRepo) Create(ctx context.Context, like *engagement.Like) error {
	query := `
		INSERT INTO likes (post_id, ip_address)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT unique_like DO NOTHING
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, like.PostID, like.SourceAddress).
		Scan(&like.ID, &like.CreatedAt)

	// ON CONFLICT DO NOTHING returns no rows when this address already liked the post
	if errors.Is(err, sql.ErrNoRows) {
		return engagement.ErrDuplicateLike
	}

	if err != nil {
		if isForeignKeyViolation(err, "fk_like_post") {
			return engagement.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}

	return nil
}
