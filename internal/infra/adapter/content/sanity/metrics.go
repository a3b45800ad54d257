package sanity

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_store_query_duration_seconds",
			Help:    "Content store query duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"query"},
	)

	queryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_store_query_errors_total",
			Help: "Total number of failed content store queries",
		},
		[]string{"query", "reason"},
	)

	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_store_queries_total",
			Help: "Total number of content store queries",
		},
		[]string{"query"},
	)
)

// recordQuery records a completed store query.
func recordQuery(name string, duration time.Duration) {
	queriesTotal.WithLabelValues(name).Inc()
	queryDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// recordQueryError records a failed store query.
// reason should be one of: "transport", "status", "decode", "breaker", "ratelimit".
func recordQueryError(name, reason string) {
	queryErrors.WithLabelValues(name, reason).Inc()
}
