package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenCarriesEmailAndExpiry(t *testing.T) {
	access, err := NewAccessToken("secret", "amina@example.com", 60)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token should verify: %v", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("expected map claims")
	}
	if claims["email"] != "amina@example.com" || claims["sub"] != "amina@example.com" {
		t.Fatalf("email claim missing: %v", claims)
	}

	// one hour expiry, with a little slack for test runtime
	until := time.Until(access.Exp)
	if until < 59*time.Minute || until > 61*time.Minute {
		t.Fatalf("expected ~1h expiry, got %s", until)
	}
}

func TestNewAccessTokenWrongSecretFails(t *testing.T) {
	access, err := NewAccessToken("secret", "amina@example.com", 60)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	if err == nil && tok.Valid {
		t.Fatalf("token must not verify under a different secret")
	}
}
