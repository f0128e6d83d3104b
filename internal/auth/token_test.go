package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSignAndVerifyToken(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := SignToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}

	userID, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", userID)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := SignToken(1, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}

	_, err = VerifyToken(tok, secret)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := SignToken(2, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}

	_, err = VerifyToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestVerifyToken_Missing(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("", []byte("k"))
	if !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}
