package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/mediavault/mediavault/internal/common"
	"github.com/mediavault/mediavault/internal/server/models"
)

type ctxKey string

const principalKey ctxKey = "principal"

// PrincipalFromContext returns the authenticated user attached by the gate.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(models.Principal)
	return p, ok
}

// authenticate is the per-request authentication gate. The token is read
// from the session cookie only; there is no bearer-header fallback on the
// inbound path. Any token problem (expired, malformed, revoked, or a
// subject that no longer resolves to a user) yields the same 401 body, so
// a caller cannot tell which check failed. Only a failure that is not a
// recognizable token error surfaces as a 500.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(common.AuthCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "Authentication token missing", nil)
			return
		}
		token := cookie.Value

		claims, err := s.tokens.Verify(token)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
				writeError(w, http.StatusUnauthorized, "Invalid authentication token", nil)
			case errors.Is(err, common.ErrNoSecretKey):
				s.logger.Error(r.Context(), "auth gate: no signing secret configured")
				writeError(w, http.StatusInternalServerError, "Authentication error", nil)
			default:
				s.logger.Error(r.Context(), "auth gate: unexpected verifier error", "error", err)
				writeError(w, http.StatusInternalServerError, "Authentication error", nil)
			}
			return
		}

		if s.revoked.IsRevoked(token) {
			writeError(w, http.StatusUnauthorized, "Invalid authentication token", nil)
			return
		}

		user, err := s.repos.Users(s.db).GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				// same body as a bad token: no oracle on which half failed
				writeError(w, http.StatusUnauthorized, "Invalid authentication token", nil)
				return
			}
			s.logger.Error(r.Context(), "auth gate: user lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Authentication error", nil)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, user.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
