package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("secret", "admin@example.com", time.Now())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", "admin@example.com", time.Now())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := ParseToken("other", token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	token, err := IssueToken("secret", "admin@example.com", time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CheckPassword(hash, "hunter2") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "hunter3") {
		t.Fatal("expected mismatched password to fail")
	}
}
