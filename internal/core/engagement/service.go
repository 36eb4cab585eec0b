package engagement

import (
	"context"
	"fmt"
	"strings"

	"Quill/internal/core/validation"
)

type engagementService struct {
	posts    PostChecker
	likes    LikeRepository
	comments CommentRepository
}

// NewService creates a new engagement service
func NewService(posts PostChecker, likes LikeRepository, comments CommentRepository) Service {
	return &engagementService{
		posts:    posts,
		likes:    likes,
		comments: comments,
	}
}

// LikePost checks the post exists, then relies on the storage uniqueness
// constraint to reject a second like from the same address
func (s *engagementService) LikePost(ctx context.Context, postID int64, sourceAddress string) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}

	sourceAddress = strings.TrimSpace(sourceAddress)
	if sourceAddress == "" {
		sourceAddress = DefaultSourceAddress
	}

	like := &Like{
		PostID:        postID,
		SourceAddress: sourceAddress,
	}
	return s.likes.Create(ctx, like)
}

// AddComment validates the input before touching storage, so an invalid
// comment never results in a row
func (s *engagementService) AddComment(ctx context.Context, postID int64, req AddCommentRequest) (int64, error) {
	req.Author = strings.TrimSpace(req.Author)
	req.Email = strings.TrimSpace(req.Email)
	req.Content = strings.TrimSpace(req.Content)

	if err := validation.Struct(req); err != nil {
		return 0, err
	}

	if err := s.requirePost(ctx, postID); err != nil {
		return 0, err
	}

	comment := &Comment{
		PostID:  postID,
		Author:  req.Author,
		Email:   req.Email,
		Content: req.Content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return 0, err
	}

	return comment.ID, nil
}

// ListComments returns comments for a post, newest first
func (s *engagementService) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	if postID <= 0 {
		return []*Comment{}, nil
	}

	result, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*Comment{}
	}
	return result, nil
}

func (s *engagementService) requirePost(ctx context.Context, postID int64) error {
	if postID <= 0 {
		return ErrPostNotFound
	}

	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to check post existence: %w", err)
	}
	if !exists {
		return ErrPostNotFound
	}
	return nil
}
