package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mediavault/mediavault/internal/common"
	"github.com/mediavault/mediavault/internal/dbx"
	"github.com/mediavault/mediavault/internal/logging"
	"github.com/mediavault/mediavault/internal/server/auth"
	"github.com/mediavault/mediavault/internal/server/config"
	"github.com/mediavault/mediavault/internal/server/models"
	"github.com/mediavault/mediavault/internal/server/repositories/catalog"
	"github.com/mediavault/mediavault/internal/server/repositories/users"
	"github.com/mediavault/mediavault/internal/server/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- fakes ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}, byID: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeCatalogRepo struct {
	movies []models.Movie
	err    error
}

func (f *fakeCatalogRepo) ListMovies(context.Context) ([]models.Movie, error) {
	return f.movies, f.err
}
func (f *fakeCatalogRepo) ListShows(context.Context) ([]models.Show, error) { return nil, f.err }
func (f *fakeCatalogRepo) ListTracks(context.Context) ([]models.Track, error) {
	return nil, f.err
}

type fakeManager struct {
	usersRepo   users.Repository
	catalogRepo catalog.Repository
}

func (f *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeManager) Users(dbx.DBTX) users.Repository             { return f.usersRepo }
func (f *fakeManager) Catalog(dbx.DBTX) catalog.Repository         { return f.catalogRepo }

// --- fixture ---

type fixture struct {
	server  *Server
	router  chi.Router
	users   *fakeUsersRepo
	tokens  *auth.TokenManager
	revoked *auth.RevocationList
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
		BcryptCost:            bcrypt.MinCost,
		Environment:           "development",
	}

	usersRepo := newFakeUsersRepo()
	catalogRepo := &fakeCatalogRepo{movies: []models.Movie{{ID: "m-1", Title: "Alien", Year: 1979}}}
	m := &fakeManager{usersRepo: usersRepo, catalogRepo: catalogRepo}

	logger := logging.NewDefault()
	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.TokenValidityDuration)
	revoked := auth.NewRevocationList(tokens)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost, logger)

	authSvc := services.NewAuthService(nil, m, hasher, tokens, revoked, logger)
	catalogSvc := services.NewCatalogService(nil, m, logger)

	srv := NewServer(cfg, nil, m, authSvc, catalogSvc, tokens, revoked, logger)
	return &fixture{
		server:  srv,
		router:  srv.Routes(),
		users:   usersRepo,
		tokens:  tokens,
		revoked: revoked,
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any, prepare ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, p := range prepare {
		p(req)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// register creates a user through the API and returns the session token.
func (f *fixture) register(t *testing.T, email, username, password string) string {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":           email,
		"username":        username,
		"password":        password,
		"confirmPassword": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func withSessionCookie(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: common.AuthCookieName, Value: token})
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}
