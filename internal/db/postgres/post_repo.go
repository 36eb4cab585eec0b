package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Quill/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (user_id, title, content, excerpt)
		VALUES ($1, $2, $3, $4)
		RETURNING id, views, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.UserID, post.Title, post.Content, post.Excerpt,
	).Scan(&post.ID, &post.Views, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		// The author vanished between the service check and this insert
		if isForeignKeyViolation(err, "fk_post_author") {
			return posts.ErrAuthorNotFound
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// List returns every post newest first with aggregate like/comment counts.
// Counts are computed per call; nothing is cached.
func (r *postgresPostRepo) List(ctx context.Context) ([]*posts.PostSummary, error) {
	query := `
		SELECT
			p.id, p.title, p.excerpt, p.views, p.created_at, p.updated_at,
			u.username,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer closeRows(rows)

	result := []*posts.PostSummary{}
	for rows.Next() {
		var summary posts.PostSummary
		var excerpt sql.NullString
		if err := rows.Scan(
			&summary.ID, &summary.Title, &excerpt, &summary.Views,
			&summary.CreatedAt, &summary.UpdatedAt,
			&summary.Username, &summary.Likes, &summary.Comments,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		summary.Excerpt = excerpt.String
		result = append(result, &summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

// RecordView atomically increments the view counter and reads the post back
// inside one transaction, so the returned views include this view
func (r *postgresPostRepo) RecordView(ctx context.Context, postID int64) (*posts.PostDetail, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	result, err := tx.ExecContext(ctx, `UPDATE posts SET views = views + 1 WHERE id = $1`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return nil, posts.ErrNotFound
	}

	query := `
		SELECT
			p.id, p.user_id, p.title, p.content, p.excerpt, p.views,
			p.created_at, p.updated_at,
			u.username,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`

	var detail posts.PostDetail
	var excerpt sql.NullString
	err = tx.QueryRowContext(ctx, query, postID).Scan(
		&detail.ID, &detail.UserID, &detail.Title, &detail.Content, &excerpt, &detail.Views,
		&detail.CreatedAt, &detail.UpdatedAt,
		&detail.Username, &detail.Likes, &detail.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	detail.Excerpt = excerpt.String

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &detail, nil
}

// GetOwnerID returns the id of the user who owns the post
func (r *postgresPostRepo) GetOwnerID(ctx context.Context, postID int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM posts WHERE id = $1`, postID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, posts.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get post owner: %w", err)
	}
	return ownerID, nil
}

// Update overwrites the editable fields and bumps updated_at
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, excerpt = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query, post.ID, post.Title, post.Content, post.Excerpt).
		Scan(&post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return posts.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// Delete removes the post. ON DELETE CASCADE removes its likes and comments
// as part of the same statement.
func (r *postgresPostRepo) Delete(ctx context.Context, postID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}
	return nil
}

// Exists reports whether a post with this id is present
func (r *postgresPostRepo) Exists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}
