// Package metrics exposes the Prometheus instruments for the recommendation
// pipeline. Everything is registered on the default registry and served at
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts recommendation requests by terminal status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_requests_total",
		Help: "Recommendation requests by status.",
	}, []string{"status"})

	// StageDuration observes how long each pipeline stage takes.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommendation_stage_duration_seconds",
		Help:    "Duration of each recommendation pipeline stage.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	// CacheHits counts result cache hits and misses.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_cache_requests_total",
		Help: "Result cache lookups by outcome.",
	}, []string{"outcome"})
)
