package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mediavault/mediavault/internal/common"
	"github.com/mediavault/mediavault/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is deliberately slow; login latency is bounded by it.
const DefaultBcryptCost = 12

// PasswordHasher wraps bcrypt with a fixed cost injected at construction.
type PasswordHasher struct {
	cost   int
	logger logging.Logger
}

// NewPasswordHasher returns a hasher with the given work factor. Costs
// outside bcrypt's supported range fall back to DefaultBcryptCost.
func NewPasswordHasher(cost int, logger logging.Logger) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost, logger: logger}
}

// Hash returns a salt-embedding bcrypt digest of plaintext.
// Empty input yields common.ErrEmptyInput.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", common.ErrEmptyInput
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. It never returns an
// error: empty inputs are false without touching bcrypt, and any internal
// bcrypt failure is logged and treated as a non-match.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) && h.logger != nil {
			h.logger.Warn(context.Background(), "password comparison failed", "error", err)
		}
		return false
	}
	return true
}
