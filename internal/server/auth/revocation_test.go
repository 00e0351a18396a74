package auth

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mediavault/mediavault/internal/common"
)

func newRevocationFixture(t *testing.T) (*TokenManager, *RevocationList) {
	t.Helper()
	tm := NewTokenManager("revocation-secret", time.Hour)
	return tm, NewRevocationList(tm)
}

func TestRevocationList_RevokeThenIsRevoked(t *testing.T) {
	t.Parallel()

	tm, rl := newRevocationFixture(t)

	tok, err := tm.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	ok, err := rl.Revoke(tok)
	if err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
	if !ok {
		t.Fatalf("expected Revoke to succeed for a live token")
	}
	if !rl.IsRevoked(tok) {
		t.Fatalf("token must be revoked after Revoke")
	}
}

func TestRevocationList_UnknownTokenIsNotRevoked(t *testing.T) {
	t.Parallel()

	_, rl := newRevocationFixture(t)

	if rl.IsRevoked("never-issued-random-string") {
		t.Fatalf("membership test must be false for unknown token")
	}
}

func TestRevocationList_EmptyTokenFailsClosed(t *testing.T) {
	t.Parallel()

	_, rl := newRevocationFixture(t)

	if !rl.IsRevoked("") {
		t.Fatalf("empty token must read as revoked")
	}
}

func TestRevocationList_Revoke_EmptyToken(t *testing.T) {
	t.Parallel()

	_, rl := newRevocationFixture(t)

	_, err := rl.Revoke("")
	if !errors.Is(err, common.ErrEmptyInput) {
		t.Fatalf("expected common.ErrEmptyInput, got %v", err)
	}
}

func TestRevocationList_Revoke_ExpiredTokenIsNoOp(t *testing.T) {
	t.Parallel()

	tm, rl := newRevocationFixture(t)

	tok, err := tm.IssueWithTTL("u2", -time.Second)
	if err != nil {
		t.Fatalf("IssueWithTTL error: %v", err)
	}

	ok, err := rl.Revoke(tok)
	if err != nil {
		t.Fatalf("Revoke must not propagate verification errors, got %v", err)
	}
	if ok {
		t.Fatalf("expired token must not be admitted to the list")
	}
	if rl.IsRevoked(tok) {
		t.Fatalf("expired token must not appear in the list")
	}
}

func TestRevocationList_Clear(t *testing.T) {
	t.Parallel()

	tm, rl := newRevocationFixture(t)

	tok, err := tm.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := rl.Revoke(tok); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}

	rl.Clear()

	if rl.IsRevoked(tok) {
		t.Fatalf("Clear must empty the list")
	}
}

func TestRevocationList_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	tm, rl := newRevocationFixture(t)

	tokens := make([]string, 16)
	for i := range tokens {
		tok, err := tm.Issue(fmt.Sprintf("user-%d", i))
		if err != nil {
			t.Fatalf("Issue error: %v", err)
		}
		tokens[i] = tok
	}

	var wg sync.WaitGroup
	for _, tok := range tokens {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := rl.Revoke(tok); err != nil {
				t.Errorf("Revoke error: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			rl.IsRevoked(tok)
		}()
	}
	wg.Wait()

	for _, tok := range tokens {
		if !rl.IsRevoked(tok) {
			t.Fatalf("token missing from list after concurrent revoke")
		}
	}
}
