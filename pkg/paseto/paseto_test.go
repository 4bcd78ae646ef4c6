package paseto

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"employee-portal/models"
)

var testSecret = base64.URLEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func TestGenerateAndValidateToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := &models.User{ID: 42, Email: "a@x.com", Role: models.RoleEmployee}
	token, err := maker.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if !strings.HasPrefix(token, "v2.local.") {
		t.Fatalf("expected a v2.local token, got %q", token)
	}

	claims, err := maker.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@x.com" || claims.Role != models.RoleEmployee {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	maker, err := NewPasetoMaker(testSecret, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	issued := time.Now().Add(-2 * time.Hour)
	maker.now = func() time.Time { return issued }
	token, err := maker.GenerateToken(&models.User{ID: 1, Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	maker.now = time.Now
	if _, err := maker.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	maker, _ := NewPasetoMaker(testSecret, time.Hour)
	other, _ := NewPasetoMaker(base64.URLEncoding.EncodeToString([]byte("ffffffffffffffffffffffffffffffff")), time.Hour)

	token, err := maker.GenerateToken(&models.User{ID: 7})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected token from a different key to be rejected")
	}
	if _, err := maker.ValidateToken("garbage"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}

func TestNewPasetoMakerRejectsBadSecret(t *testing.T) {
	short := base64.URLEncoding.EncodeToString([]byte("too-short"))
	if _, err := NewPasetoMaker(short, time.Hour); err == nil {
		t.Fatal("expected error for a secret that is not 32 bytes")
	}
	if _, err := NewPasetoMaker("%%%not-base64%%%", time.Hour); err == nil {
		t.Fatal("expected error for an undecodable secret")
	}
	if _, err := NewPasetoMaker(testSecret, 0); err == nil {
		t.Fatal("expected error for a zero ttl")
	}
}
