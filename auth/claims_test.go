package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseClaims(t *testing.T) {
	expires := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := signedToken(t, Claims{
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	claims, err := ParseClaims(token)
	if err != nil {
		t.Fatalf("parse claims: %v", err)
	}
	if claims.Subject != "u1" {
		t.Errorf("subject = %q, want u1", claims.Subject)
	}
	if claims.TokenType != "access" {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if !claims.ExpiresAt.Time.Equal(expires) {
		t.Errorf("expiry = %v, want %v", claims.ExpiresAt.Time, expires)
	}
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	if _, err := ParseClaims("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
	if _, err := ParseClaims("  "); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestExpiresIn(t *testing.T) {
	now := time.Now()
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
	}}
	if got := claims.ExpiresIn(now); got != 10*time.Minute {
		t.Errorf("ExpiresIn = %v, want 10m", got)
	}

	var noExpiry Claims
	if got := noExpiry.ExpiresIn(now); got != 0 {
		t.Errorf("ExpiresIn without expiry = %v, want 0", got)
	}
}
