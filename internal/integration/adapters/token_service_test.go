package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("generated token round-trips through validation", func(t *testing.T) {
		service := NewTokenService("test-secret", time.Hour)
		userID := uuid.New()

		token, err := service.GenerateAccessToken(ctx, userID, "maria@example.com")
		if err != nil {
			t.Fatalf("unexpected error generating token: %v", err)
		}
		if token == "" {
			t.Fatal("expected a non-empty token")
		}

		claims, err := service.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error validating token: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "maria@example.com" {
			t.Errorf("expected email maria@example.com, got %q", claims.Email)
		}
		if time.Until(claims.ExpiresAt) > time.Hour {
			t.Errorf("expiry %v exceeds the configured lifetime", claims.ExpiresAt)
		}
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		issuer := NewTokenService("secret-a", time.Hour)
		validator := NewTokenService("secret-b", time.Hour)

		token, err := issuer.GenerateAccessToken(ctx, uuid.New(), "maria@example.com")
		if err != nil {
			t.Fatalf("unexpected error generating token: %v", err)
		}

		if _, err := validator.ValidateAccessToken(ctx, token); err == nil {
			t.Error("expected validation to fail for a foreign signature")
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		service := NewTokenService("test-secret", time.Nanosecond)

		token, err := service.GenerateAccessToken(ctx, uuid.New(), "maria@example.com")
		if err != nil {
			t.Fatalf("unexpected error generating token: %v", err)
		}

		time.Sleep(10 * time.Millisecond)

		if _, err := service.ValidateAccessToken(ctx, token); err == nil {
			t.Error("expected validation to fail for an expired token")
		}
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		service := NewTokenService("test-secret", time.Hour)

		if _, err := service.ValidateAccessToken(ctx, "not.a.token"); err == nil {
			t.Error("expected validation to fail for garbage input")
		}
	})
}
