package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mediavault/mediavault/internal/common"
	"github.com/mediavault/mediavault/internal/server/config"
	"github.com/mediavault/mediavault/internal/server/models"
	"github.com/mediavault/mediavault/internal/server/services"
)

type registerRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  models.Principal `json:"user"`
	Token string           `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	user, token, err := s.auth.Register(r.Context(), req.Email, req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		s.writeAuthError(w, r, err)
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, sessionResponse{User: user.Principal(), Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeAuthError(w, r, err)
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, sessionResponse{User: user.Principal(), Token: token})
}

// handleLogout always succeeds: the cookie is cleared client-side
// regardless, and revocation is best-effort. Unlike the inbound gate, the
// token may arrive via the Authorization header or the cookie here.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		if cookie, err := r.Cookie(common.AuthCookieName); err == nil {
			token = cookie.Value
		}
	}

	s.auth.Logout(r.Context(), token)

	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		// gate always runs first; reaching here without a principal is a bug
		s.logger.Error(r.Context(), "me: no principal in context")
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.Principal{"user": principal})
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := s.catalog.Movies(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing movies failed", "error", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Movie{"movies": movies})
}

func (s *Server) handleShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.catalog.Shows(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing shows failed", "error", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Show{"shows": shows})
}

func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := s.catalog.Tracks(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing tracks failed", "error", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Track{"tracks": tracks})
}

// writeAuthError maps use-case errors onto the response envelope. Anything
// unrecognized is logged in full and reduced to a generic 500.
func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs services.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeValidationError(w, verrs)
	case errors.Is(err, common.ErrorEmailInUse):
		writeError(w, http.StatusBadRequest, "Email already in use", []services.FieldError{
			{Field: "email", Message: "Email already in use"},
		})
	case errors.Is(err, common.ErrorUnauthorized):
		writeInvalidCredentials(w)
	default:
		s.logger.Error(r.Context(), "auth request failed", "error", err)
		writeServerError(w)
	}
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.TokenValidityDuration.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Environment == config.EnvProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Environment == config.EnvProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
