package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateAdminToken("reception-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}

	actor, err := ActorFromToken(tok, secret)
	if err != nil {
		t.Fatalf("ActorFromToken error: %v", err)
	}
	if actor != "reception-1" {
		t.Fatalf("actor mismatch: got %q want %q", actor, "reception-1")
	}
}

func TestGenerateAdminToken_EmptyActor(t *testing.T) {
	t.Parallel()

	if _, err := GenerateAdminToken("", []byte("k"), time.Hour); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestActorFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateAdminToken("u1", secret, -1*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}

	_, err = ActorFromToken(tok, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestActorFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateAdminToken("u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}

	if _, err = ActorFromToken(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestActorFromToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "u3",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ActorFromToken(tok, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestActorFromToken_NoExpiry(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  issuer,
		Subject: "u4",
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ActorFromToken(tok, secret); err == nil {
		t.Fatal("expected error for token without expiry")
	}
}

func TestActorFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := ActorFromToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
