package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashWithCost("Track123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashWithCost: %v", err)
	}
	if hash == "Track123" {
		t.Fatalf("hash must not equal the password")
	}
	if !Verify("Track123", hash) {
		t.Fatalf("expected password to verify")
	}
	if Verify("track123", hash) {
		t.Fatalf("wrong password must not verify")
	}
	if Verify("Track123", "not-a-hash") {
		t.Fatalf("malformed hash must not verify")
	}
}
