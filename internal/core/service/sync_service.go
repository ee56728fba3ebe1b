package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/api/metrics"
	"github.com/starlog/catalog-api/internal/core/ports"
)

// ErrSyncInProgress is returned when another catalog sync holds the lock.
var ErrSyncInProgress = errors.New("catalog sync already in progress")

// CatalogSyncService orchestrates a full sync run: acquire the cross-process
// lock, fetch the upstream catalog, fan the records out to the dispatcher
// and release the lock.
type CatalogSyncService struct {
	fetcher    ports.FilmFetcher
	dispatcher ports.SyncDispatcher
	lock       ports.SyncLock
	logger     zerolog.Logger
}

func NewCatalogSyncService(fetcher ports.FilmFetcher, dispatcher ports.SyncDispatcher, lock ports.SyncLock, logger zerolog.Logger) *CatalogSyncService {
	return &CatalogSyncService{fetcher: fetcher, dispatcher: dispatcher, lock: lock, logger: logger}
}

// Sync performs one catalog sync run. Concurrent runs are rejected with
// ErrSyncInProgress rather than queued.
func (s *CatalogSyncService) Sync(ctx context.Context) (*ports.SyncResult, error) {
	acquired, err := s.lock.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrSyncInProgress
	}
	defer func() {
		if err := s.lock.Release(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("sync lock release failed")
		}
	}()

	start := time.Now()

	records, err := s.fetcher.FetchFilms(ctx)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("fetch_error").Inc()
		return nil, err
	}

	result := s.dispatcher.Run(ctx, records)
	result.Fetched = len(records)

	metrics.SyncRunsTotal.WithLabelValues("completed").Inc()
	metrics.SyncDuration.Observe(time.Since(start).Seconds())
	s.logger.Info().
		Int("fetched", result.Fetched).
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("failed", result.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("catalog sync completed")

	return &result, nil
}
