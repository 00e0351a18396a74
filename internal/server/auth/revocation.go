package auth

import (
	"sync"
	"time"

	"github.com/mediavault/mediavault/internal/common"
)

// RevocationList rejects otherwise-valid session tokens before their natural
// expiry (logout semantics). Entries are keyed by the raw token string and
// carry the token's own expiry, so the set stays bounded: stale entries are
// dropped lazily on writes, no background sweeper runs.
//
// Safe for concurrent use by in-flight requests.
type RevocationList struct {
	tokens *TokenManager

	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewRevocationList(tokens *TokenManager) *RevocationList {
	return &RevocationList{
		tokens:  tokens,
		revoked: make(map[string]time.Time),
	}
}

// Revoke adds token to the list until its encoded expiry. An empty token is
// common.ErrEmptyInput. A token that no longer verifies (already expired or
// invalid) is a no-op returning false: there is nothing left to revoke.
func (r *RevocationList) Revoke(token string) (bool, error) {
	if token == "" {
		return false, common.ErrEmptyInput
	}

	claims, err := r.tokens.Verify(token)
	if err != nil {
		return false, nil
	}

	expiry := time.Now().Add(r.tokens.TTL())
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	r.mu.Lock()
	r.purgeLocked(time.Now())
	r.revoked[token] = expiry
	r.mu.Unlock()
	return true, nil
}

// IsRevoked reports whether token is on the list. An empty token is revoked
// (fail-closed). This is a pure membership test: signature and expiry are
// the caller's job via Verify.
func (r *RevocationList) IsRevoked(token string) bool {
	if token == "" {
		return true
	}

	r.mu.RLock()
	expiry, ok := r.revoked[token]
	r.mu.RUnlock()

	return ok && time.Now().Before(expiry)
}

// Clear empties the list. Intended for tests and operational resets.
func (r *RevocationList) Clear() {
	r.mu.Lock()
	r.revoked = make(map[string]time.Time)
	r.mu.Unlock()
}

// purgeLocked drops entries whose tokens have expired on their own.
// Caller holds the write lock.
func (r *RevocationList) purgeLocked(now time.Time) {
	for token, expiry := range r.revoked {
		if !now.Before(expiry) {
			delete(r.revoked, token)
		}
	}
}
