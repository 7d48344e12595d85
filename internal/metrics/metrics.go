// Package metrics defines the Prometheus instruments for the comments API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommentsRequestsTotal tracks /comments requests by outcome
	// (ok, validation, not_found, internal).
	CommentsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comments_requests_total",
			Help: "Total /comments requests by outcome",
		},
		[]string{"outcome"},
	)

	// CommentsRequestDuration tracks end-to-end /comments latency in seconds
	CommentsRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "comments_request_duration_seconds",
			Help:    "End-to-end /comments request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// CommentsReturned tracks how many enriched comments each request returned
	CommentsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "comments_returned",
			Help:    "Number of enriched comments returned per request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
)
