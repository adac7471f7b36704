package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims encodes JWT claims embedded into CaseLink tokens.
//
// This is a DTO matching the server's token contract. Subject carries the
// user ID; TokenType distinguishes access from refresh tokens.
type Claims struct {
	TokenType string `json:"type,omitempty"`

	jwt.RegisteredClaims
}

// ParseClaims decodes a token's claims without verifying the signature.
// Token validity is decided by the server; this exists for introspection
// (expiry-aware logging, distinguishing access from refresh tokens).
func ParseClaims(token string) (*Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("sdk/auth: token is empty")
	}
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// ExpiresIn returns the time remaining before the token expires, or zero
// when the token carries no expiry.
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c == nil || c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(now)
}
