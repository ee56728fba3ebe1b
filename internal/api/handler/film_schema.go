package handler

import (
	"github.com/starlog/catalog-api/internal/core/domain"
	"github.com/starlog/catalog-api/internal/core/ports"
)

type filmRequest struct {
	Title        string   `json:"title" validate:"required"`
	EpisodeID    int      `json:"episode_id" validate:"required"`
	OpeningCrawl string   `json:"opening_crawl" validate:"required"`
	Director     string   `json:"director" validate:"required"`
	Producer     string   `json:"producer" validate:"required"`
	ReleaseDate  string   `json:"release_date" validate:"required,datetime=2006-01-02"`
	Characters   []string `json:"characters" validate:"required,dive,url"`
	Planets      []string `json:"planets,omitempty" validate:"omitempty,dive,url"`
	Starships    []string `json:"starships,omitempty" validate:"omitempty,dive,url"`
	Vehicles     []string `json:"vehicles,omitempty" validate:"omitempty,dive,url"`
	Species      []string `json:"species,omitempty" validate:"omitempty,dive,url"`
	URL          string   `json:"url" validate:"required,url"`
}

func (r *filmRequest) toInput() ports.FilmInput {
	return ports.FilmInput{
		Title:        r.Title,
		EpisodeID:    r.EpisodeID,
		OpeningCrawl: r.OpeningCrawl,
		Director:     r.Director,
		Producer:     r.Producer,
		ReleaseDate:  r.ReleaseDate,
		Characters:   r.Characters,
		Planets:      r.Planets,
		Starships:    r.Starships,
		Vehicles:     r.Vehicles,
		Species:      r.Species,
		URL:          r.URL,
	}
}

type filmResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	EpisodeID    int      `json:"episode_id"`
	OpeningCrawl string   `json:"opening_crawl"`
	Director     string   `json:"director"`
	Producer     string   `json:"producer"`
	ReleaseDate  string   `json:"release_date"`
	Characters   []string `json:"characters"`
	Planets      []string `json:"planets,omitempty"`
	Starships    []string `json:"starships,omitempty"`
	Vehicles     []string `json:"vehicles,omitempty"`
	Species      []string `json:"species,omitempty"`
	URL          string   `json:"url"`
}

func toFilmResponse(f *domain.Film) filmResponse {
	return filmResponse{
		ID:           f.ID,
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
	}
}

func toFilmResponses(films []domain.Film) []filmResponse {
	out := make([]filmResponse, 0, len(films))
	for i := range films {
		out = append(out, toFilmResponse(&films[i]))
	}
	return out
}
