// Package swapi fetches the upstream Star Wars film catalog.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/starlog/catalog-api/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client talks to the SWAPI REST endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for baseURL (e.g. https://swapi.dev/api). A
// default timeout is applied when none is provided.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type filmPayload struct {
	Title        string   `json:"title"`
	EpisodeID    int      `json:"episode_id"`
	OpeningCrawl string   `json:"opening_crawl"`
	Director     string   `json:"director"`
	Producer     string   `json:"producer"`
	ReleaseDate  string   `json:"release_date"`
	Characters   []string `json:"characters"`
	Planets      []string `json:"planets"`
	Starships    []string `json:"starships"`
	Vehicles     []string `json:"vehicles"`
	Species      []string `json:"species"`
	URL          string   `json:"url"`
}

type filmsResponse struct {
	Results []filmPayload `json:"results"`
}

// FetchFilms retrieves every film from the upstream /films resource.
func (c *Client) FetchFilms(ctx context.Context) ([]ports.FilmInput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/films", nil)
	if err != nil {
		return nil, fmt.Errorf("swapi request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("swapi fetch films: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("swapi fetch films: unexpected status %d", resp.StatusCode)
	}

	var payload filmsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("swapi decode films: %w", err)
	}

	films := make([]ports.FilmInput, 0, len(payload.Results))
	for _, f := range payload.Results {
		films = append(films, ports.FilmInput{
			Title:        f.Title,
			EpisodeID:    f.EpisodeID,
			OpeningCrawl: f.OpeningCrawl,
			Director:     f.Director,
			Producer:     f.Producer,
			ReleaseDate:  f.ReleaseDate,
			Characters:   f.Characters,
			Planets:      f.Planets,
			Starships:    f.Starships,
			Vehicles:     f.Vehicles,
			Species:      f.Species,
			URL:          f.URL,
		})
	}
	return films, nil
}
