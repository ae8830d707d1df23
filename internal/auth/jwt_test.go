package auth

import (
	"strings"
	"testing"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	InitializeJWT(strings.Repeat("a", 64))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateAccessToken("u1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "admin@example.com" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	initTestJWT(t)

	refresh, err := GenerateRefreshToken("u1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	if _, err := ValidateAccessToken(refresh); err == nil {
		t.Error("a refresh token must be rejected as an access token")
	}
	if _, err := ValidateRefreshToken(refresh); err != nil {
		t.Errorf("refresh token should validate as refresh: %v", err)
	}
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	initTestJWT(t)

	access, err := GenerateAccessToken("u1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	if _, err := ValidateRefreshToken(access); err == nil {
		t.Error("an access token must be rejected as a refresh token")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	initTestJWT(t)

	if _, err := ValidateAccessToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	InitializeJWT(strings.Repeat("a", 64))
	token, err := GenerateAccessToken("u1", "admin@example.com", "admin")
	if err != nil {
		t.Fatal(err)
	}

	InitializeJWT(strings.Repeat("b", 64))
	if _, err := ValidateAccessToken(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "hunter2!" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := VerifyPassword("hunter2!", hash); err != nil {
		t.Errorf("expected password to verify: %v", err)
	}
	if err := VerifyPassword("wrong", hash); err == nil {
		t.Error("expected wrong password to fail verification")
	}
}
