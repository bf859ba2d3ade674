package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, or expired token. Callers must not distinguish.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the caller identity embedded in a token.
// The claims are a snapshot taken at issuance and are not re-checked
// against current user state on verification.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// Claims is the JWT payload.
type Claims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies signed identity tokens.
// It is stateless; the secret and TTL are fixed at construction.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens creates a token issuer/verifier with the given HMAC secret
// and token lifetime.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed HS256 token carrying the identity, valid for
// the configured lifetime.
func (t *Tokens) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: identity.UserID,
		Name:   identity.Name,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns the embedded
// identity. Any failure yields ErrInvalidToken.
func (t *Tokens) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
