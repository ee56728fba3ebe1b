// Package metrics defines and registers all custom Prometheus metrics for
// the catalog API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on import via promauto;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts access tokens minted by the token service.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// GuardDecisionsTotal counts access guard evaluations on protected routes.
// Label:
//   - decision: "allowed", "unauthenticated" or "forbidden"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of access guard decisions, by outcome.",
	},
	[]string{"decision"},
)

// ── Catalog sync metrics ──────────────────────────────────────────────────────

// SyncRunsTotal counts catalog sync runs.
// Label:
//   - result: "completed" or "fetch_error"
var SyncRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Total number of catalog sync runs, by result.",
	},
	[]string{"result"},
)

// SyncFilmsTotal counts individual film upserts performed during sync.
// Label:
//   - result: "created", "updated" or "error"
var SyncFilmsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_films_total",
		Help:      "Total number of film records processed during sync, by result.",
	},
	[]string{"result"},
)

// SyncDuration measures how long a full catalog sync run takes.
var SyncDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of catalog sync runs from fetch to last upsert.",
		Buckets:   prometheus.DefBuckets,
	},
)
