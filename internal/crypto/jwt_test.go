package crypto

import (
	"testing"
	"time"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1700000000000", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	if claims.UserID != "user-1700000000000" {
		t.Errorf("unexpected user id in claims: %s", claims.UserID)
	}
	if claims.Issuer != "eventdeck" {
		t.Errorf("unexpected issuer: %s", claims.Issuer)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	if _, err := ValidateToken(token, "wrong-secret"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	if _, err := ValidateToken(token, "test-secret"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "test-secret"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
