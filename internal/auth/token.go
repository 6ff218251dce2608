package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"catalyst-hr/internal/domain"
)

// TokenIssuer mints HS256 JWTs for the JSON API. The same secret is
// used by the bearer middleware to validate them.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

// NewTokenIssuer creates an issuer with the given shared secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Mint issues a token for the session's identity.
func (t *TokenIssuer) Mint(s *domain.Session) (string, error) {
	if s == nil || s.Email == "" {
		return "", domain.ErrValidation("a session is required to mint a token")
	}
	now := t.now()
	claims := jwt.MapClaims{
		"sub":  s.Email,
		"name": s.DisplayName,
		"role": s.Role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}
