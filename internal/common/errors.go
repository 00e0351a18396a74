// Package common defines shared constants and sentinel errors used across
// MediaVault layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration errors.
	ErrorEmailInUse = errors.New("email already in use")

	// Input errors (a required value is empty or absent).
	ErrEmptyInput = errors.New("empty input")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Configuration errors (signing secret not set).
	ErrNoSecretKey = errors.New("no secret key configured")
)
