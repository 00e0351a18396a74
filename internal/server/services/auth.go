// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, and logout on top of the
// authentication core and the users repository.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/mediavault/mediavault/internal/common"
	"github.com/mediavault/mediavault/internal/logging"
	"github.com/mediavault/mediavault/internal/server/auth"
	"github.com/mediavault/mediavault/internal/server/models"
	"github.com/mediavault/mediavault/internal/server/repositories/repomanager"
)

// FieldError names the request field a validation message belongs to.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed field check of a request so the
// client gets the full list in a single 400 response.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e))
}

// emailPattern accepts the simple local@domain.tld shape; full RFC 5322
// parsing is not attempted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService provides the authentication use-cases:
// - Register: validate, create a user, mint a session token
// - Login: verify credentials and mint a session token
// - Logout: best-effort revocation of the presented token
type AuthService struct {
	db      *sql.DB
	repos   repomanager.RepositoryManager
	hasher  *auth.PasswordHasher
	tokens  *auth.TokenManager
	revoked *auth.RevocationList
	logger  logging.Logger
}

// NewAuthService constructs an AuthService from the shared auth components.
// Hasher and token manager carry their configuration; nothing here reads
// ambient state.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.PasswordHasher,
	tokens *auth.TokenManager, revoked *auth.RevocationList, logger logging.Logger) *AuthService {
	return &AuthService{
		db:      db,
		repos:   m,
		hasher:  hasher,
		tokens:  tokens,
		revoked: revoked,
		logger:  logger,
	}
}

// Register validates all fields at once, then creates the user and issues a
// session token. Field problems come back as ValidationErrors; a duplicate
// email (checked case-insensitively, and enforced again by the unique index)
// is common.ErrorEmailInUse.
//
// If token issuance fails after the insert, the created record remains;
// that is acceptable because registration is idempotent by email on retry.
func (s *AuthService) Register(ctx context.Context, email, username, password, confirm string) (*models.User, string, error) {
	var fieldErrs ValidationErrors

	email = strings.TrimSpace(email)
	if email == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(email) {
		fieldErrs = append(fieldErrs, FieldError{Field: "email", Message: "Invalid email address"})
	}

	if strings.TrimSpace(username) == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "username", Message: "Username is required"})
	}

	if password == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "password", Message: "Password is required"})
	} else if res := auth.ValidatePassword(password); !res.Valid {
		fieldErrs = append(fieldErrs, FieldError{Field: "password", Message: res.Message})
	}

	if password != confirm {
		fieldErrs = append(fieldErrs, FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}

	if len(fieldErrs) > 0 {
		return nil, "", fieldErrs
	}

	email = strings.ToLower(email)
	repo := s.repos.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, "", common.ErrorEmailInUse
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", fmt.Errorf("checking email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		UserName:     strings.TrimSpace(username),
		PasswordHash: hash,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailInUse) {
			return nil, "", common.ErrorEmailInUse
		}
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return created, token, nil
}

// Login verifies the credentials and returns the user plus a fresh session
// token. A missing account and a wrong password both yield
// common.ErrorUnauthorized, so responses cannot be used to enumerate users.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var fieldErrs ValidationErrors

	email = strings.TrimSpace(email)
	if email == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(email) {
		fieldErrs = append(fieldErrs, FieldError{Field: "email", Message: "Invalid email address"})
	}

	if password == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "password", Message: "Password is required"})
	}

	if len(fieldErrs) > 0 {
		return nil, "", fieldErrs
	}

	repo := s.repos.Users(s.db)
	user, err := repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}

// Logout revokes the presented token on a best-effort basis. It never fails:
// the client's cookie is cleared regardless, and a token that cannot be
// revoked (already expired, malformed) has nothing left to revoke.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}

	ok, err := s.revoked.Revoke(token)
	if err != nil {
		s.logger.Warn(ctx, "logout: revoke failed", "error", err)
		return
	}
	if !ok {
		s.logger.Debug(ctx, "logout: token not revocable, skipping")
	}
}
