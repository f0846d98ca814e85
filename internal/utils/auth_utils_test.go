package utils

import (
	"testing"
	"time"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-Pass!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if err := CompareHashAndPassword(hash, "s3cret-Pass!"); err != nil {
		t.Errorf("expected the password to match its hash: %v", err)
	}
	if err := CompareHashAndPassword(hash, "wrong"); err == nil {
		t.Errorf("expected a mismatch for the wrong password")
	}
}

func TestJwtTokenRoundTrip(t *testing.T) {
	key := []byte("test-key")
	token, err := CreateJwtToken(42, "alice@example.com", "Alice", "Smith", key, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("CreateJwtToken failed: %v", err)
	}

	claims, err := VerifyToken(token, key)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.ID != 42 || claims.Email != "alice@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	if _, err := VerifyToken(token, []byte("other-key")); err == nil {
		t.Errorf("expected verification with the wrong key to fail")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	key := []byte("test-key")
	token, err := CreateJwtToken(1, "a@b.c", "A", "B", key, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("CreateJwtToken failed: %v", err)
	}
	if _, err := VerifyToken(token, key); err == nil {
		t.Errorf("expected an expired token to fail verification")
	}
}
