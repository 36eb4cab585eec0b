package posts

import (
	"context"
	"fmt"
	"strings"

	"Quill/internal/core/engagement"
	"Quill/internal/core/validation"
)

type postService struct {
	repo     Repository
	authors  AuthorChecker
	comments CommentLister
}

// NewPostService creates a new post service
func NewPostService(repo Repository, authors AuthorChecker, comments CommentLister) Service {
	return &postService{
		repo:     repo,
		authors:  authors,
		comments: comments,
	}
}

// CreatePost stores a new post owned by userID
func (s *postService) CreatePost(ctx context.Context, userID int64, req WritePostRequest) (*CreatePostResponse, error) {
	req, err := normalizeWriteRequest(req)
	if err != nil {
		return nil, err
	}

	// Tokens outlive accounts; make sure the author is still there
	exists, err := s.authors.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check author: %w", err)
	}
	if !exists {
		return nil, ErrAuthorNotFound
	}

	post := &Post{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Excerpt: DeriveExcerpt(req.Content, req.Excerpt),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return &CreatePostResponse{
		Message: "Post created successfully",
		PostID:  post.ID,
	}, nil
}

// ListPosts returns all posts newest first
func (s *postService) ListPosts(ctx context.Context) ([]*PostSummary, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*PostSummary{}
	}
	return result, nil
}

// GetPost records a view and returns the post with all of its comments
func (s *postService) GetPost(ctx context.Context, postID int64) (*PostDetail, error) {
	if postID <= 0 {
		return nil, ErrNotFound
	}

	detail, err := s.repo.RecordView(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []*engagement.Comment{}
	}
	detail.Comments = comments

	return detail, nil
}

// UpdatePost overwrites a post's editable fields after the ownership check
func (s *postService) UpdatePost(ctx context.Context, postID, userID int64, req WritePostRequest) error {
	req, err := normalizeWriteRequest(req)
	if err != nil {
		return err
	}

	if err := s.requireOwner(ctx, postID, userID); err != nil {
		return err
	}

	return s.repo.Update(ctx, &Post{
		ID:      postID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Excerpt: DeriveExcerpt(req.Content, req.Excerpt),
	})
}

// DeletePost removes a post after the ownership check
func (s *postService) DeletePost(ctx context.Context, postID, userID int64) error {
	if err := s.requireOwner(ctx, postID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, postID)
}

// requireOwner returns ErrNotFound for a missing post and ErrForbidden unless
// userID is exactly the owner. There is no admin override.
func (s *postService) requireOwner(ctx context.Context, postID, userID int64) error {
	if postID <= 0 {
		return ErrNotFound
	}

	ownerID, err := s.repo.GetOwnerID(ctx, postID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrForbidden
	}
	return nil
}

func normalizeWriteRequest(req WritePostRequest) (WritePostRequest, error) {
	req.Title = strings.TrimSpace(req.Title)
	if strings.TrimSpace(req.Content) == "" {
		req.Content = ""
	}
	if strings.TrimSpace(req.Excerpt) == "" {
		req.Excerpt = ""
	}

	if err := validation.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}
