package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/mediavault/mediavault/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Tests use bcrypt.MinCost to keep the suite fast; production cost is set
// through config.

func TestPasswordHasher_HashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost, nil)

	digest, err := h.Hash("correct horse battery staple1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected bcrypt digest, got %q", digest)
	}

	if !h.Verify("correct horse battery staple1", digest) {
		t.Fatalf("expected match for original plaintext")
	}
	if h.Verify("wrong password", digest) {
		t.Fatalf("expected mismatch for wrong plaintext")
	}
}

func TestPasswordHasher_Hash_EmptyInput(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost, nil)

	_, err := h.Hash("")
	if !errors.Is(err, common.ErrEmptyInput) {
		t.Fatalf("expected common.ErrEmptyInput, got %v", err)
	}
}

func TestPasswordHasher_Verify_EmptyInputs(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost, nil)
	digest, err := h.Hash("some-password1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h.Verify("", digest) {
		t.Fatalf("empty plaintext must not verify")
	}
	if h.Verify("some-password1", "") {
		t.Fatalf("empty digest must not verify")
	}
	if h.Verify("", "") {
		t.Fatalf("both empty must not verify")
	}
}

func TestPasswordHasher_Verify_GarbageDigestIsNonMatch(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost, nil)

	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("internal compare errors must read as non-match")
	}
}

func TestNewPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(99, nil)
	if h.cost != DefaultBcryptCost {
		t.Fatalf("expected fallback to DefaultBcryptCost, got %d", h.cost)
	}
}
