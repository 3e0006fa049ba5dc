package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGameToken_RoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	token, err := issuer.GenerateGameToken("game-1")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := issuer.ValidateGameToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.GameID != "game-1" {
		t.Fatalf("GameID = %q, want game-1", claims.GameID)
	}
	if err := issuer.AuthorizeGame(token, "game-1"); err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if err := issuer.AuthorizeGame(token, "game-2"); !errors.Is(err, ErrGameMismatch) {
		t.Fatalf("expected ErrGameMismatch, got %v", err)
	}
}

func TestGameToken_WrongSecret(t *testing.T) {
	token, err := NewIssuer("secret-a", time.Hour).GenerateGameToken("game-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewIssuer("secret-b", time.Hour).ValidateGameToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestGameToken_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := issuer.GenerateGameToken("game-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := issuer.ValidateGameToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestGameToken_Garbage(t *testing.T) {
	if _, err := NewIssuer("s", time.Hour).ValidateGameToken("not.a.token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
