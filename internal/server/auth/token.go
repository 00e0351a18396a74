// Package auth implements the authentication core: password hashing and
// strength rules, session token issuance/verification, and the revocation
// list that gives logout its teeth.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mediavault/mediavault/internal/common"
)

// Claims carries the standard registered claims plus the user identifier
// the token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenManager signs and verifies session JWTs (HS256). The secret and
// default lifetime are injected once at construction; the secret is checked
// lazily on first use, so a misconfigured process fails on the first token
// operation rather than at startup.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the default token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for subject with the default lifetime.
func (m *TokenManager) Issue(subject string) (string, error) {
	return m.IssueWithTTL(subject, m.ttl)
}

// IssueWithTTL signs a token for subject expiring after ttl. The subject is
// encoded as-is, including the empty string.
func (m *TokenManager) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	if len(m.secret) == 0 {
		return "", common.ErrNoSecretKey
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: subject,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
//
// Failures map onto a closed set of kinds callers can switch on with
// errors.Is: common.ErrNoSecretKey (no secret configured),
// common.ErrTokenExpired (well-signed but past its expiry; checked before
// structural errors, so an expired valid token never reports as invalid),
// common.ErrInvalidToken (malformed, bad signature, wrong algorithm).
// Anything else is wrapped, preserving the cause.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, common.ErrNoSecretKey
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, common.ErrInvalidToken
		default:
			return nil, fmt.Errorf("verifying token: %w", err)
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
