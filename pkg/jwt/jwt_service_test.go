package jwt

import (
	"Recipe-Share-API/domain"
	"errors"
	"testing"
)

func testService(secret string) *jwtService {
	return &jwtService{secretKey: secret, issuer: "RECIPESHARE"}
}

func TestTokenRoundtrip(t *testing.T) {
	svc := testService("test-secret")

	token := svc.GenerateToken(42, "chef")
	if token == "" {
		t.Fatal("generated token is empty")
	}

	id, role, err := svc.GetUserByToken(token)
	if err != nil {
		t.Fatalf("GetUserByToken: %v", err)
	}
	if id != 42 {
		t.Errorf("user id = %d, want 42", id)
	}
	if role != "chef" {
		t.Errorf("role = %q, want %q", role, "chef")
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token := testService("secret-a").GenerateToken(7, "foodlover")

	if _, _, err := testService("secret-b").GetUserByToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	svc := testService("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, _, err := svc.GetUserByToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("GetUserByToken(%q): expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestTokenTamperedPayloadRejected(t *testing.T) {
	svc := testService("test-secret")
	token := svc.GenerateToken(1, "foodlover")

	tampered := []byte(token)
	tampered[len(tampered)/2] ^= 0x01

	if _, _, err := svc.GetUserByToken(string(tampered)); err == nil {
		t.Error("tampered token was accepted")
	}
}
