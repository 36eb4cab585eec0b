package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Quill/internal/auth"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

// TokenVerifier validates bearer tokens. Implemented by auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware enforces bearer token authentication for protected routes
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth middleware ensures the request carries a valid bearer token.
// A missing or malformed header returns 401; a token that fails verification returns 403.
// On success the user id is injected into the context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, http.StatusUnauthorized, "AuthRequired", "Access token required")
			return
		}

		// Must be Bearer token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "AuthRequired",
				"Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "AuthRequired", "Access token required")
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=verification_failed ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, http.StatusForbidden, "InvalidToken", "Invalid token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=bad_subject ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, http.StatusForbidden, "InvalidToken", "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user's id from the request context.
// Returns false if the request is not authenticated.
func GetUserID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(UserIDKey).(int64)
	return id, ok && id > 0
}

// SetTestUserID sets the user id in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
