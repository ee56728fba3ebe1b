package ports

import (
	"context"

	"github.com/starlog/catalog-api/internal/core/domain"
)

// FilmInput carries the mutable fields of a film for create, update and sync.
type FilmInput struct {
	Title        string
	EpisodeID    int
	OpeningCrawl string
	Director     string
	Producer     string
	ReleaseDate  string
	Characters   []string
	Planets      []string
	Starships    []string
	Vehicles     []string
	Species      []string
	URL          string
}

// FilmService manages the film catalog.
type FilmService interface {
	Create(ctx context.Context, input FilmInput) (*domain.Film, error)
	GetByID(ctx context.Context, id int64) (*domain.Film, error)
	ListWithDetails(ctx context.Context) ([]domain.Film, error)
	ListTitles(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id int64, input FilmInput) (*domain.Film, error)
	Delete(ctx context.Context, id int64) error
	// Upsert applies a single record by title: update when a film with the
	// same title exists, insert otherwise. Reports whether a row was created.
	Upsert(ctx context.Context, input FilmInput) (created bool, err error)
}

// FilmFetcher retrieves the upstream film catalog.
type FilmFetcher interface {
	FetchFilms(ctx context.Context) ([]FilmInput, error)
}

// SyncResult summarises a catalog sync run.
type SyncResult struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// SyncDispatcher fans upsert records out to workers sharded by title and
// waits for all of them to complete.
type SyncDispatcher interface {
	Run(ctx context.Context, records []FilmInput) SyncResult
}

// SyncLock serialises catalog sync runs across processes.
type SyncLock interface {
	// Acquire returns false when another sync currently holds the lock.
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// SyncService orchestrates a full catalog sync run.
type SyncService interface {
	Sync(ctx context.Context) (*SyncResult, error)
}
