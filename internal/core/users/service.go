package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Quill/internal/core/validation"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo   UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, tokens TokenIssuer) UserService {
	return &userService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Register validates the request, stores a bcrypt hash of the password and
// issues a token for the new account
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if len(req.Password) > MaxPasswordBytes {
		return nil, validation.New("password", fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Repository will handle duplicate constraint errors
	user, err := s.userRepo.Create(ctx, &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    UserRef{ID: user.ID, Username: user.Username},
	}, nil
}

// Login exchanges a username and password for a token
func (s *userService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  UserRef{ID: user.ID, Username: user.Username},
	}, nil
}
