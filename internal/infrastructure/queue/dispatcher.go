package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/api/metrics"
	"github.com/starlog/catalog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

type syncJob struct {
	input   ports.FilmInput
	results chan<- syncOutcome
}

type syncOutcome struct {
	created bool
	err     error
}

// SyncDispatcher shards catalog upserts across a fixed set of workers using
// consistent hashing on the film title, guaranteeing per-title ordering when
// the same record appears twice in one run.
type SyncDispatcher struct {
	workers []chan syncJob
	films   ports.FilmService
	log     zerolog.Logger
	start   sync.Once
}

// NewSyncDispatcher creates a SyncDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewSyncDispatcher(numWorkers int, films ports.FilmService, log zerolog.Logger) *SyncDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &SyncDispatcher{
		workers: make([]chan syncJob, numWorkers),
		films:   films,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan syncJob, channelBuffer)
	}
	return d
}

// Run fans the records out to the sharded workers and waits for every upsert
// to finish, tallying the outcomes. Workers are started lazily on the first
// run and live for the life of the process.
func (d *SyncDispatcher) Run(ctx context.Context, records []ports.FilmInput) ports.SyncResult {
	d.start.Do(func() {
		for i, ch := range d.workers {
			go d.runWorker(i, ch)
		}
	})

	results := make(chan syncOutcome, len(records))
	for _, record := range records {
		d.workers[d.shardIndex(record.Title)] <- syncJob{input: record, results: results}
	}

	var result ports.SyncResult
	for range records {
		select {
		case <-ctx.Done():
			return result
		case outcome := <-results:
			switch {
			case outcome.err != nil:
				result.Failed++
				metrics.SyncFilmsTotal.WithLabelValues("error").Inc()
			case outcome.created:
				result.Created++
				metrics.SyncFilmsTotal.WithLabelValues("created").Inc()
			default:
				result.Updated++
				metrics.SyncFilmsTotal.WithLabelValues("updated").Inc()
			}
		}
	}
	return result
}

// shardIndex maps a film title deterministically to a worker index.
func (d *SyncDispatcher) shardIndex(title string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return int(h.Sum32()) % len(d.workers)
}

func (d *SyncDispatcher) runWorker(id int, ch <-chan syncJob) {
	for job := range ch {
		created, err := d.films.Upsert(context.Background(), job.input)
		if err != nil {
			d.log.Error().Err(err).
				Str("title", job.input.Title).
				Int("worker_id", id).
				Msg("film upsert failed")
		}
		job.results <- syncOutcome{created: created, err: err}
	}
}
