package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mediavault/mediavault/internal/logging"
	"github.com/mediavault/mediavault/internal/server/models"
	"github.com/mediavault/mediavault/internal/server/repositories/repomanager"
)

// CatalogService exposes read-only browsing of the media library.
type CatalogService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *CatalogService {
	return &CatalogService{db: db, repos: m, logger: logger}
}

func (s *CatalogService) Movies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.repos.Catalog(s.db).ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing movies: %w", err)
	}
	return movies, nil
}

func (s *CatalogService) Shows(ctx context.Context) ([]models.Show, error) {
	shows, err := s.repos.Catalog(s.db).ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing shows: %w", err)
	}
	return shows, nil
}

func (s *CatalogService) Tracks(ctx context.Context) ([]models.Track, error) {
	tracks, err := s.repos.Catalog(s.db).ListTracks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tracks: %w", err)
	}
	return tracks, nil
}
