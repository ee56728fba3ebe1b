package ports

import (
	"context"

	"github.com/starlog/catalog-api/internal/core/domain"
)

// FilmRepository persists catalog films.
type FilmRepository interface {
	Create(ctx context.Context, film *domain.Film) (*domain.Film, error)
	FindByID(ctx context.Context, id int64) (*domain.Film, error)
	FindByTitle(ctx context.Context, title string) (*domain.Film, error)
	FindAll(ctx context.Context) ([]domain.Film, error)
	// FindAllTitles returns only the title projection of every film.
	FindAllTitles(ctx context.Context) ([]string, error)
	Update(ctx context.Context, film *domain.Film) (*domain.Film, error)
	Delete(ctx context.Context, id int64) error
}
