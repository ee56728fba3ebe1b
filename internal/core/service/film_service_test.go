package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/core/domain"
	"github.com/starlog/catalog-api/internal/core/ports"
)

func filmInput(title string) ports.FilmInput {
	return ports.FilmInput{
		Title:        title,
		EpisodeID:    4,
		OpeningCrawl: "It is a period of civil war.",
		Director:     "George Lucas",
		Producer:     "Gary Kurtz, Rick McCallum",
		ReleaseDate:  "1977-05-25",
		Characters:   []string{"https://swapi.dev/api/people/1/"},
		URL:          "https://swapi.dev/api/films/1/",
	}
}

func TestFilmService_CreateAndGet(t *testing.T) {
	svc := NewFilmService(newStubFilmRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), filmInput("A New Hope"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Title != "A New Hope" {
		t.Fatalf("unexpected film: %+v", got)
	}
}

func TestFilmService_GetByID_NotFound(t *testing.T) {
	svc := NewFilmService(newStubFilmRepo(), zerolog.Nop())
	if _, err := svc.GetByID(context.Background(), 99); err != domain.ErrFilmNotFound {
		t.Fatalf("expected ErrFilmNotFound, got %v", err)
	}
}

func TestFilmService_ListTitles(t *testing.T) {
	svc := NewFilmService(newStubFilmRepo(), zerolog.Nop())

	for _, title := range []string{"A New Hope", "The Empire Strikes Back"} {
		if _, err := svc.Create(context.Background(), filmInput(title)); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	titles, err := svc.ListTitles(context.Background())
	if err != nil {
		t.Fatalf("ListTitles returned error: %v", err)
	}
	if !reflect.DeepEqual(titles, []string{"A New Hope", "The Empire Strikes Back"}) {
		t.Fatalf("unexpected titles: %v", titles)
	}
}

func TestFilmService_Update_NotFound(t *testing.T) {
	svc := NewFilmService(newStubFilmRepo(), zerolog.Nop())
	if _, err := svc.Update(context.Background(), 7, filmInput("X")); err != domain.ErrFilmNotFound {
		t.Fatalf("expected ErrFilmNotFound, got %v", err)
	}
}

func TestFilmService_Upsert(t *testing.T) {
	svc := NewFilmService(newStubFilmRepo(), zerolog.Nop())

	// First sight of a title inserts.
	created, err := svc.Upsert(context.Background(), filmInput("A New Hope"))
	if err != nil {
		t.Fatalf("first Upsert returned error: %v", err)
	}
	if !created {
		t.Fatalf("expected first upsert to create")
	}

	// Same title again updates in place.
	input := filmInput("A New Hope")
	input.Director = "G. Lucas"
	created, err = svc.Upsert(context.Background(), input)
	if err != nil {
		t.Fatalf("second Upsert returned error: %v", err)
	}
	if created {
		t.Fatalf("expected second upsert to update, not create")
	}

	films, err := svc.ListWithDetails(context.Background())
	if err != nil {
		t.Fatalf("ListWithDetails returned error: %v", err)
	}
	if len(films) != 1 {
		t.Fatalf("expected one film after replay, got %d", len(films))
	}
	if films[0].Director != "G. Lucas" {
		t.Fatalf("update not applied: %+v", films[0])
	}
}

func TestFilmService_Delete(t *testing.T) {
	svc := NewFilmService(newStubFilmRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), filmInput("A New Hope"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrFilmNotFound {
		t.Fatalf("expected ErrFilmNotFound, got %v", err)
	}
}
