package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenClaims(t *testing.T) {
	at, err := NewAccessToken("secret", 7, 2, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse back: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"].(float64) != 7 {
		t.Errorf("sub = %v, want 7", claims["sub"])
	}
	if claims["level"].(float64) != 2 {
		t.Errorf("level = %v, want 2", claims["level"])
	}
	if !at.Exp.After(time.Now()) {
		t.Errorf("expiry %v is not in the future", at.Exp)
	}
}

func TestNewRefreshTokenShape(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Errorf("raw length = %d, want 96 hex chars", len(rt.Raw))
	}
	if !rt.Exp.After(time.Now().Add(6 * 24 * time.Hour)) {
		t.Errorf("expiry %v sooner than expected", rt.Exp)
	}
	other, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if rt.Raw == other.Raw {
		t.Error("two refresh tokens share the same raw value")
	}
}

func TestHashRefreshRaw(t *testing.T) {
	h1 := HashRefreshRaw("abc")
	h2 := HashRefreshRaw("abc")
	if h1 != h2 {
		t.Error("hash is not deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h1))
	}
	if HashRefreshRaw("abd") == h1 {
		t.Error("different inputs share a hash")
	}
}
