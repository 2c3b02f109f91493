package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	userID := uuid.New()
	tok, err := svc.GenerateAccessToken(userID, "ada@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch")
	}
	if claims.Email != "ada@example.com" {
		t.Fatalf("email mismatch, got %q", claims.Email)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token must not validate as refresh")
	}
}

func TestHMACService_RefreshTokenCarriesID(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected a refresh token")
	}
	if claims.TokenID() == "" {
		t.Fatalf("refresh tokens must carry a token id for revocation")
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Nanosecond, time.Hour)

	tok, err := svc.GenerateAccessToken(uuid.New(), "ada@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_TamperedToken(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	tok, err := svc.GenerateAccessToken(uuid.New(), "ada@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewHMACService("different-secret", "another-secret", 15*time.Minute, time.Hour)
	if _, err := other.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
