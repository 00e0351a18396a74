// Package catalog provides read access to the media library: movies, TV
// shows, and music tracks. Writes happen out of band (library import
// tooling), so the API surface is listing only.
package catalog

import (
	"context"

	"github.com/mediavault/mediavault/internal/server/models"
)

type Repository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	ListShows(ctx context.Context) ([]models.Show, error)
	ListTracks(ctx context.Context) ([]models.Track, error)
}
