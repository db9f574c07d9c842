package password

import (
	"strings"
	"testing"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	encoded, err := Hash("s3cret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", encoded)
	}

	ok, err := Verify(encoded, "s3cret123")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	encoded, err := Hash("s3cret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := Verify(encoded, "wrongpass")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if _, err := Verify("not-a-hash", "whatever"); err != ErrMalformedHash {
		t.Fatalf("expected ErrMalformedHash, got %v", err)
	}
	if _, err := Verify("$bcrypt$v=19$m=1,t=1,p=1$abc$def", "x"); err != ErrMalformedHash {
		t.Fatalf("expected ErrMalformedHash for wrong algorithm, got %v", err)
	}
}

func TestHash_UniqueSalt(t *testing.T) {
	a, _ := Hash("samepassword")
	b, _ := Hash("samepassword")
	if a == b {
		t.Fatalf("two hashes of the same password should differ by salt")
	}
}
