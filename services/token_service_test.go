package services

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, err := tokens.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if !tokens.Validate(token) {
		t.Fatal("expected freshly issued token to be valid")
	}

	username, err := tokens.ExtractUsername(token)
	if err != nil {
		t.Fatalf("failed to extract username: %v", err)
	}
	if username != "alice" {
		t.Errorf("expected username %q, got %q", "alice", username)
	}
}

func TestExpiredTokenIsInvalid(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Hour)

	token, err := tokens.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if tokens.Validate(token) {
		t.Error("expected expired token to be invalid")
	}
}

func TestTokenSignedWithOtherSecretIsInvalid(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	other := NewTokenService("other-secret", time.Hour)

	token, err := other.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if tokens.Validate(token) {
		t.Error("expected token signed with another secret to be invalid")
	}
}

func TestTamperedTokenIsInvalid(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, err := tokens.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if tokens.Validate(tampered) {
		t.Error("expected tampered token to be invalid")
	}
}
