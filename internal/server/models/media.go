package models

import "time"

// Catalog records. FilePath points into the media root on disk; the API
// serves metadata only, never the path contents.

type Movie struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Year     int       `json:"year"`
	FilePath string    `json:"-"`
	AddedAt  time.Time `json:"addedAt"`
}

type Show struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Seasons  int       `json:"seasons"`
	FilePath string    `json:"-"`
	AddedAt  time.Time `json:"addedAt"`
}

type Track struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Artist   string    `json:"artist"`
	Album    string    `json:"album"`
	FilePath string    `json:"-"`
	AddedAt  time.Time `json:"addedAt"`
}
