// Package httpapi exposes the REST surface of MediaVault: the auth
// endpoints, the cookie-based authentication gate, and the read-only
// catalog endpoints behind it.
package httpapi

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mediavault/mediavault/internal/logging"
	"github.com/mediavault/mediavault/internal/server/auth"
	"github.com/mediavault/mediavault/internal/server/config"
	"github.com/mediavault/mediavault/internal/server/repositories/repomanager"
	"github.com/mediavault/mediavault/internal/server/services"
)

type Server struct {
	cfg     *config.Config
	db      *sql.DB
	repos   repomanager.RepositoryManager
	auth    *services.AuthService
	catalog *services.CatalogService
	tokens  *auth.TokenManager
	revoked *auth.RevocationList
	logger  logging.Logger
}

func NewServer(cfg *config.Config, db *sql.DB, m repomanager.RepositoryManager,
	authSvc *services.AuthService, catalogSvc *services.CatalogService,
	tokens *auth.TokenManager, revoked *auth.RevocationList, logger logging.Logger) *Server {
	return &Server{
		cfg:     cfg,
		db:      db,
		repos:   m,
		auth:    authSvc,
		catalog: catalogSvc,
		tokens:  tokens,
		revoked: revoked,
		logger:  logger,
	}
}

// Routes builds the chi router. Auth endpoints are public; everything under
// the authenticated group passes the gate first.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Get("/auth/me", s.handleMe)
			r.Get("/movies", s.handleMovies)
			r.Get("/shows", s.handleShows)
			r.Get("/tracks", s.handleTracks)
		})
	})

	return r
}
