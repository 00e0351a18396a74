package catalog

import (
	"context"
	"fmt"

	"github.com/mediavault/mediavault/internal/dbx"
	"github.com/mediavault/mediavault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	query :=
		`SELECT id, title, year, file_path, added_at FROM movies
		 ORDER BY title
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.FilePath, &m.AddedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return movies, nil
}

func (r *PostgresRepository) ListShows(ctx context.Context) ([]models.Show, error) {
	query :=
		`SELECT id, title, seasons, file_path, added_at FROM shows
		 ORDER BY title
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var shows []models.Show
	for rows.Next() {
		var s models.Show
		if err := rows.Scan(&s.ID, &s.Title, &s.Seasons, &s.FilePath, &s.AddedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return shows, nil
}

func (r *PostgresRepository) ListTracks(ctx context.Context) ([]models.Track, error) {
	query :=
		`SELECT id, title, artist, album, file_path, added_at FROM tracks
		 ORDER BY artist, album, title
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var tr models.Track
		if err := rows.Scan(&tr.ID, &tr.Title, &tr.Artist, &tr.Album, &tr.FilePath, &tr.AddedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tracks = append(tracks, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tracks, nil
}
