package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/core/domain"
	"github.com/starlog/catalog-api/internal/core/ports"
)

// countingFilmService records every upsert it receives. Titles listed in
// existing are reported as updates, titles in failing return an error.
type countingFilmService struct {
	mu       sync.Mutex
	existing map[string]bool
	failing  map[string]bool
	upserts  []string
}

func (s *countingFilmService) Upsert(_ context.Context, input ports.FilmInput) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts = append(s.upserts, input.Title)
	if s.failing[input.Title] {
		return false, errors.New("upsert failed")
	}
	return !s.existing[input.Title], nil
}

func (s *countingFilmService) Create(context.Context, ports.FilmInput) (*domain.Film, error) {
	return nil, nil
}

func (s *countingFilmService) GetByID(context.Context, int64) (*domain.Film, error) {
	return nil, nil
}

func (s *countingFilmService) ListWithDetails(context.Context) ([]domain.Film, error) {
	return nil, nil
}

func (s *countingFilmService) ListTitles(context.Context) ([]string, error) {
	return nil, nil
}

func (s *countingFilmService) Update(context.Context, int64, ports.FilmInput) (*domain.Film, error) {
	return nil, nil
}

func (s *countingFilmService) Delete(context.Context, int64) error {
	return nil
}

var _ ports.FilmService = (*countingFilmService)(nil)

func TestSyncDispatcher_Run_Tallies(t *testing.T) {
	films := &countingFilmService{
		existing: map[string]bool{"A New Hope": true},
		failing:  map[string]bool{"Attack of the Clones": true},
	}
	d := NewSyncDispatcher(3, films, zerolog.Nop())

	records := []ports.FilmInput{
		{Title: "A New Hope", EpisodeID: 4},
		{Title: "The Empire Strikes Back", EpisodeID: 5},
		{Title: "Return of the Jedi", EpisodeID: 6},
		{Title: "Attack of the Clones", EpisodeID: 2},
	}

	result := d.Run(context.Background(), records)

	if result.Created != 2 {
		t.Errorf("created = %d, want 2", result.Created)
	}
	if result.Updated != 1 {
		t.Errorf("updated = %d, want 1", result.Updated)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if len(films.upserts) != len(records) {
		t.Errorf("upserts = %d, want %d", len(films.upserts), len(records))
	}
}

func TestSyncDispatcher_Run_Empty(t *testing.T) {
	d := NewSyncDispatcher(2, &countingFilmService{}, zerolog.Nop())

	result := d.Run(context.Background(), nil)
	if result != (ports.SyncResult{}) {
		t.Fatalf("expected zero result, got %+v", result)
	}
}

func TestSyncDispatcher_Run_ManyRecords(t *testing.T) {
	films := &countingFilmService{}
	d := NewSyncDispatcher(4, films, zerolog.Nop())

	records := make([]ports.FilmInput, 200)
	for i := range records {
		records[i] = ports.FilmInput{Title: fmt.Sprintf("Film %03d", i)}
	}

	result := d.Run(context.Background(), records)
	if result.Created != len(records) {
		t.Fatalf("created = %d, want %d", result.Created, len(records))
	}
}

func TestShardIndex_Deterministic(t *testing.T) {
	d := NewSyncDispatcher(4, &countingFilmService{}, zerolog.Nop())

	for _, title := range []string{"A New Hope", "The Phantom Menace", ""} {
		first := d.shardIndex(title)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(title); got != first {
				t.Fatalf("shardIndex(%q) not stable: %d then %d", title, first, got)
			}
		}
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shardIndex(%q) = %d out of range", title, first)
		}
	}
}
