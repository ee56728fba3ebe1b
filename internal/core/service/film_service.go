package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/core/domain"
	"github.com/starlog/catalog-api/internal/core/ports"
)

// FilmService manages the film catalog.
type FilmService struct {
	films  ports.FilmRepository
	logger zerolog.Logger
}

func NewFilmService(films ports.FilmRepository, logger zerolog.Logger) *FilmService {
	return &FilmService{films: films, logger: logger}
}

func (s *FilmService) Create(ctx context.Context, input ports.FilmInput) (*domain.Film, error) {
	now := time.Now().UTC()
	film := filmFromInput(input)
	film.CreatedAt = now
	film.UpdatedAt = now

	created, err := s.films.Create(ctx, film)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("film_id", created.ID).Str("title", created.Title).Msg("film created")
	return created, nil
}

func (s *FilmService) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	return s.films.FindByID(ctx, id)
}

func (s *FilmService) ListWithDetails(ctx context.Context) ([]domain.Film, error) {
	return s.films.FindAll(ctx)
}

func (s *FilmService) ListTitles(ctx context.Context) ([]string, error) {
	return s.films.FindAllTitles(ctx)
}

func (s *FilmService) Update(ctx context.Context, id int64, input ports.FilmInput) (*domain.Film, error) {
	existing, err := s.films.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := filmFromInput(input)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	return s.films.Update(ctx, updated)
}

func (s *FilmService) Delete(ctx context.Context, id int64) error {
	if err := s.films.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("film_id", id).Msg("film deleted")
	return nil
}

// Upsert applies a single fetched record, keyed by title. The merge is
// idempotent: replaying the same record leaves the row unchanged apart from
// its updated_at timestamp.
func (s *FilmService) Upsert(ctx context.Context, input ports.FilmInput) (bool, error) {
	existing, err := s.films.FindByTitle(ctx, input.Title)
	if err != nil {
		if !errors.Is(err, domain.ErrFilmNotFound) {
			return false, err
		}
		if _, err := s.Create(ctx, input); err != nil {
			return false, err
		}
		return true, nil
	}

	if _, err := s.Update(ctx, existing.ID, input); err != nil {
		return false, err
	}
	return false, nil
}

func filmFromInput(input ports.FilmInput) *domain.Film {
	return &domain.Film{
		Title:        input.Title,
		EpisodeID:    input.EpisodeID,
		OpeningCrawl: input.OpeningCrawl,
		Director:     input.Director,
		Producer:     input.Producer,
		ReleaseDate:  input.ReleaseDate,
		Characters:   input.Characters,
		Planets:      input.Planets,
		Starships:    input.Starships,
		Vehicles:     input.Vehicles,
		Species:      input.Species,
		URL:          input.URL,
	}
}
