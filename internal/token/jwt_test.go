package token

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/userhub/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"
	email := "a@b.com"

	tok, err := Generate(userID, email, secret, time.Hour)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := Parse(tok, secret)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != userID {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, userID)
	}
	if claims.Email != email {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, email)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatal("expected issued-at and expiry to be set")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := Generate("u1", "a@b.com", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = Parse(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Generate("u2", "b@c.com", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = Parse(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := Parse("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
