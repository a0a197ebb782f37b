// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FetchesIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browse_fetches_issued_total",
			Help: "Total number of fetches issued against the player endpoint",
		},
		[]string{"trigger"},
	)

	FetchesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browse_fetches_failed_total",
			Help: "Total number of failed fetches",
		},
		[]string{"trigger", "error_code"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "browse_fetch_duration_seconds",
			Help: "Duration of player endpoint fetches in seconds",
		},
		[]string{"trigger"},
	)

	StaleResponsesDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "browse_stale_responses_discarded_total",
			Help: "Responses dropped because a newer query superseded them",
		},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "browse_cache_hits_total",
			Help: "Result-cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "browse_cache_misses_total",
			Help: "Result-cache misses",
		},
	)
)
