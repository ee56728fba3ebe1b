package swapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const filmsFixture = `{
	"count": 2,
	"results": [
		{
			"title": "A New Hope",
			"episode_id": 4,
			"opening_crawl": "It is a period of civil war.",
			"director": "George Lucas",
			"producer": "Gary Kurtz, Rick McCallum",
			"release_date": "1977-05-25",
			"characters": ["https://swapi.dev/api/people/1/"],
			"planets": ["https://swapi.dev/api/planets/1/"],
			"starships": [],
			"vehicles": [],
			"species": [],
			"url": "https://swapi.dev/api/films/1/"
		},
		{
			"title": "The Empire Strikes Back",
			"episode_id": 5,
			"opening_crawl": "It is a dark time for the Rebellion.",
			"director": "Irvin Kershner",
			"producer": "Gary Kurtz, Rick McCallum",
			"release_date": "1980-05-17",
			"characters": [],
			"planets": [],
			"starships": [],
			"vehicles": [],
			"species": [],
			"url": "https://swapi.dev/api/films/2/"
		}
	]
}`

func TestClient_FetchFilms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/films" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(filmsFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	films, err := c.FetchFilms(context.Background())
	if err != nil {
		t.Fatalf("FetchFilms: %v", err)
	}
	if len(films) != 2 {
		t.Fatalf("got %d films, want 2", len(films))
	}

	first := films[0]
	if first.Title != "A New Hope" || first.EpisodeID != 4 {
		t.Errorf("unexpected first film: %+v", first)
	}
	if first.Director != "George Lucas" || first.ReleaseDate != "1977-05-25" {
		t.Errorf("unexpected first film details: %+v", first)
	}
	if len(first.Characters) != 1 || len(first.Planets) != 1 {
		t.Errorf("related URLs not mapped: %+v", first)
	}
	if films[1].Title != "The Empire Strikes Back" {
		t.Errorf("unexpected second film: %+v", films[1])
	}
}

func TestClient_FetchFilms_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/films" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	films, err := c.FetchFilms(context.Background())
	if err != nil {
		t.Fatalf("FetchFilms: %v", err)
	}
	if len(films) != 0 {
		t.Fatalf("got %d films, want 0", len(films))
	}
}

func TestClient_FetchFilms_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.FetchFilms(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestClient_FetchFilms_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.FetchFilms(context.Background()); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestClient_FetchFilms_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.FetchFilms(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
