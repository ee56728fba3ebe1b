package domain

import (
	"errors"
	"time"
)

var ErrFilmNotFound = errors.New("film not found")

// Film is the catalog aggregate root. Titles act as the natural key during
// catalog sync: an incoming record with a known title updates the existing
// row instead of inserting a duplicate.
type Film struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	EpisodeID    int       `json:"episode_id"`
	OpeningCrawl string    `json:"opening_crawl"`
	Director     string    `json:"director"`
	Producer     string    `json:"producer"`
	ReleaseDate  string    `json:"release_date"`
	Characters   []string  `json:"characters"`
	Planets      []string  `json:"planets,omitempty"`
	Starships    []string  `json:"starships,omitempty"`
	Vehicles     []string  `json:"vehicles,omitempty"`
	Species      []string  `json:"species,omitempty"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
