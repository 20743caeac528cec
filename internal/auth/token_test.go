package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer, err := NewIssuer("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer error: %v", err)
	}

	tok, err := issuer.Issue("acct-123", "user@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "acct-123" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "acct-123")
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer, err := NewIssuer("secret", -1*time.Second)
	if err != nil {
		t.Fatalf("NewIssuer error: %v", err)
	}

	tok, err := issuer.Issue("u1", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	right, _ := NewIssuer("right-secret", time.Hour)
	wrong, _ := NewIssuer("wrong-secret", time.Hour)

	tok, err := right.Issue("u2", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = wrong.Verify(tok)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	issuer, _ := NewIssuer("k", time.Hour)
	_, err := issuer.Verify("not.a.jwt")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestNewIssuer_RequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer("   ", time.Hour); err == nil {
		t.Fatalf("expected error for blank secret")
	}
}
