package auth

import (
	"testing"
	"time"

	"core_api/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := &models.User{ID: 7, Email: "owner@shop.test", Role: "owner"}

	token, exp, err := GenerateToken("test-secret", user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if exp.Before(time.Now()) {
		t.Fatalf("expected exp in future")
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("user id mismatch: %d", claims.UserID)
	}
	if claims.Email != "owner@shop.test" {
		t.Fatalf("email mismatch: %s", claims.Email)
	}
	if claims.Role != "owner" {
		t.Fatalf("role mismatch: %s", claims.Role)
	}
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.test"}
	if _, _, err := GenerateToken("", user, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.test", Role: "manager"}
	token, _, err := GenerateToken("secret-a", user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseTokenTampered(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.test", Role: "manager"}
	token, _, err := GenerateToken("test-secret", user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("test-secret", token+"x"); err == nil {
		t.Fatalf("expected error for tampered token")
	}
}

func TestParseTokenExpired(t *testing.T) {
	// GenerateToken refuses non-positive TTLs, so sign an already-expired
	// token directly.
	now := time.Now()
	c := Claims{
		UserID: 1,
		Email:  "a@b.test",
		Role:   "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken("test-secret", signed); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestParseTokenWrongMethod(t *testing.T) {
	// alg=none must never verify.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken("test-secret", signed); err == nil {
		t.Fatalf("expected error for none algorithm")
	}
}
