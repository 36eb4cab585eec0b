package comments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Quill/internal/api/handlers"
	"Quill/internal/core/engagement"
	"Quill/internal/core/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommentService implements engagement.Service for testing
type mockCommentService struct {
	addFunc  func(ctx context.Context, postID int64, req engagement.AddCommentRequest) (int64, error)
	listFunc func(ctx context.Context, postID int64) ([]*engagement.Comment, error)
}

func (m *mockCommentService) LikePost(ctx context.Context, postID int64, sourceAddress string) error {
	return nil
}

func (m *mockCommentService) AddComment(ctx context.Context, postID int64, req engagement.AddCommentRequest) (int64, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, postID, req)
	}
	return 1, nil
}

func (m *mockCommentService) ListComments(ctx context.Context, postID int64) ([]*engagement.Comment, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, postID)
	}
	return []*engagement.Comment{}, nil
}

func withPostID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newCommentRequest(t *testing.T, id string, body interface{}) *http.Request {
	t.Helper()
	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/posts/"+id+"/comments", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	return withPostID(req, id)
}

func TestCreateCommentHandler_Success(t *testing.T) {
	var gotReq engagement.AddCommentRequest
	handler := NewCreateCommentHandler(&mockCommentService{
		addFunc: func(ctx context.Context, postID int64, req engagement.AddCommentRequest) (int64, error) {
			assert.Equal(t, int64(4), postID)
			gotReq = req
			return 21, nil
		},
	})

	w := httptest.NewRecorder()
	handler.HandleCreate(w, newCommentRequest(t, "4", map[string]string{
		"author":  "Reader",
		"email":   "reader@example.com",
		"content": "Great post",
	}))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Reader", gotReq.Author)

	var resp CreateCommentOutput
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(21), resp.CommentID)
	assert.Equal(t, "Comment added successfully", resp.Message)
}

func TestCreateCommentHandler_ValidationError(t *testing.T) {
	handler := NewCreateCommentHandler(&mockCommentService{
		addFunc: func(ctx context.Context, postID int64, req engagement.AddCommentRequest) (int64, error) {
			return 0, validation.New("email", "Valid email is required")
		},
	})

	w := httptest.NewRecorder()
	handler.HandleCreate(w, newCommentRequest(t, "4", map[string]string{
		"author": "Reader", "email": "not-an-email", "content": "Hi",
	}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "email", resp.Errors[0].Field)
	assert.Equal(t, "Valid email is required", resp.Errors[0].Message)
}

func TestCreateCommentHandler_PostNotFound(t *testing.T) {
	handler := NewCreateCommentHandler(&mockCommentService{
		addFunc: func(ctx context.Context, postID int64, req engagement.AddCommentRequest) (int64, error) {
			return 0, engagement.ErrPostNotFound
		},
	})

	w := httptest.NewRecorder()
	handler.HandleCreate(w, newCommentRequest(t, "4", map[string]string{
		"author": "Reader", "email": "reader@example.com", "content": "Hi",
	}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCommentHandler_InvalidJSON(t *testing.T) {
	handler := NewCreateCommentHandler(&mockCommentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/posts/4/comments", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, withPostID(req, "4"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCommentsHandler(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	handler := NewGetCommentsHandler(&mockCommentService{
		listFunc: func(ctx context.Context, postID int64) ([]*engagement.Comment, error) {
			return []*engagement.Comment{
				{ID: 2, PostID: postID, Author: "B", Email: "b@example.com", Content: "second", CreatedAt: created},
				{ID: 1, PostID: postID, Author: "A", Email: "a@example.com", Content: "first", CreatedAt: created},
			}, nil
		},
	})

	req := withPostID(httptest.NewRequest(http.MethodGet, "/api/posts/4/comments", nil), "4")
	w := httptest.NewRecorder()
	handler.HandleGetComments(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "second", resp[0]["content"])
	assert.NotContains(t, resp[0], "postId")
}

func TestGetCommentsHandler_UnknownOrInvalidPost(t *testing.T) {
	handler := NewGetCommentsHandler(&mockCommentService{})

	for _, id := range []string{"999", "abc"} {
		req := withPostID(httptest.NewRequest(http.MethodGet, "/api/posts/"+id+"/comments", nil), id)
		w := httptest.NewRecorder()
		handler.HandleGetComments(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()), "id %q", id)
	}
}

func TestGetCommentsHandler_InternalError(t *testing.T) {
	handler := NewGetCommentsHandler(&mockCommentService{
		listFunc: func(ctx context.Context, postID int64) ([]*engagement.Comment, error) {
			return nil, errors.New("boom")
		},
	})

	req := withPostID(httptest.NewRequest(http.MethodGet, "/api/posts/4/comments", nil), "4")
	w := httptest.NewRecorder()
	handler.HandleGetComments(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
