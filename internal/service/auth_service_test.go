package service

import (
	"strings"
	"testing"
	"time"

	"github.com/rkenterprise/site-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testAuthService(expiry time.Duration) *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	auth := testAuthService(time.Hour)

	hash, err := auth.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}

	if err := auth.CheckPassword(hash, "hunter22"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := auth.CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	auth := testAuthService(time.Hour)

	token, err := auth.GenerateToken(42, "boss")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "boss" {
		t.Errorf("Username = %q, want boss", claims.Username)
	}
	if claims.ID == "" {
		t.Error("token has no jti")
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	auth := testAuthService(time.Hour)

	token, err := auth.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	if _, err := auth.ValidateToken(strings.Join(parts, ".")); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	auth := testAuthService(time.Hour)
	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})

	token, err := auth.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with different secret accepted")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	auth := testAuthService(-time.Minute)

	token, err := auth.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	auth := testAuthService(time.Hour)
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
