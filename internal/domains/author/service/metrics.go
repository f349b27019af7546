package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCommitted = "committed"
	outcomeNotFound  = "not_found"
	outcomeFailed    = "failed"
)

var (
	cascadeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_author_cascade_total",
			Help: "Author cascade deletions by outcome",
		},
		[]string{"outcome"},
	)

	cascadeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_author_cascade_duration_seconds",
			Help:    "Duration of committed author cascade deletions in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
