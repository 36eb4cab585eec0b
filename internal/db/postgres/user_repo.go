package postgres

import (
	"Quill/internal/core/users"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err, "users_username_key"):
			return nil, users.ErrUsernameTaken
		case isUniqueViolation(err, "users_email_key"):
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username (exact match)
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// Exists reports whether a user row with this id is present
func (r *postgresUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *postgresUserRepo) getOne(ctx context.Context, query string, arg interface{}) (*users.User, error) {
	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
