package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	searchEmpty    = "empty"
	searchExecuted = "executed"
	searchFailed   = "failed"
)

var (
	searchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_search_total",
			Help: "Recipe searches by outcome",
		},
		[]string{"outcome"},
	)

	searchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_search_results",
			Help:    "Number of recipes returned per executed search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
)
