package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"Quill/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "middleware-test-secret"

func newTestMiddleware(t *testing.T) (*AuthMiddleware, *auth.TokenService) {
	t.Helper()
	tokens, err := auth.NewTokenService(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}
	return NewAuthMiddleware(tokens), tokens
}

// signClaims mints a token directly so tests can build invalid ones
func signClaims(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestRequireAuth_ValidToken(t *testing.T) {
	middleware, tokens := newTestMiddleware(t)

	handlerCalled := false
	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true

		userID, ok := GetUserID(r)
		if !ok || userID != 42 {
			t.Errorf("expected user id 42, got %d (ok=%v)", userID, ok)
		}

		w.WriteHeader(http.StatusOK)
	}))

	token, err := tokens.Issue(42, "alice")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !handlerCalled {
		t.Error("handler was not called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAuth_MissingAuthHeader(t *testing.T) {
	middleware, _ := newTestMiddleware(t)

	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestRequireAuth_InvalidAuthHeaderFormat(t *testing.T) {
	middleware, _ := newTestMiddleware(t)

	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	}))

	for _, header := range []string{"Basic dGVzdDp0ZXN0", "Bearer ", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	middleware, _ := newTestMiddleware(t)

	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	middleware, _ := newTestMiddleware(t)

	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called with expired token")
	}))

	token := signClaims(t, testSecret, jwt.RegisteredClaims{
		Issuer:    auth.Issuer,
		Subject:   strconv.Itoa(7),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	middleware, _ := newTestMiddleware(t)

	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called with a forged token")
	}))

	token := signClaims(t, "some-other-secret", jwt.RegisteredClaims{
		Issuer:    auth.Issuer,
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

func TestGetUserID_NotAuthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	if id, ok := GetUserID(req); ok {
		t.Errorf("expected no user id, got %d", id)
	}
}

func TestSetTestUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTestUserID(req.Context(), 9))

	if id, ok := GetUserID(req); !ok || id != 9 {
		t.Errorf("expected user id 9, got %d (ok=%v)", id, ok)
	}
}
