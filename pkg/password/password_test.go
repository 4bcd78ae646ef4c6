package password

import "testing"

func TestHashAndCheck(t *testing.T) {
	hashed, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("secret1", hashed) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("secret2", hashed) {
		t.Fatal("expected wrong password to fail")
	}
	if CheckPasswordHash("secret1", "not-a-hash") {
		t.Fatal("expected malformed hash to fail")
	}
}
