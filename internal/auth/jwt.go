package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is the "iss" claim stamped on every token this service signs
const Issuer = "quill"

// AlgorithmHS256 is the only signing method accepted by Verify
const AlgorithmHS256 = "HS256"

var (
	// ErrMissingSecret is returned when the service is built without a signing secret
	ErrMissingSecret = errors.New("JWT secret is not configured")

	// ErrInvalidToken is returned for tokens that fail parsing, signature or claim checks
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims represents the JWT claims carried by bearer tokens.
// Subject holds the decimal user id; Username is informational only.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// UserID returns the numeric user id encoded in the subject claim
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid 'sub' claim %q", c.Subject)
	}
	return id, nil
}

// TokenService issues and verifies stateless, signed, time-limited bearer tokens
type TokenService struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with HMAC-SHA256
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %s", ttl)
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the given user
func (s *TokenService) Issue(userID int64, username string) (string, error) {
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Username: username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm, issuer and expiry of a token.
// Any failure is reported as ErrInvalidToken wrapping the cause.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	tokenString = stripBearerPrefix(tokenString)

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{AlgorithmHS256}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

// stripBearerPrefix removes the "Bearer " prefix from a token string
func stripBearerPrefix(tokenString string) string {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	return strings.TrimSpace(tokenString)
}
