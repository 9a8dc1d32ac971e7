// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedbackSubmissionsTotal counts accepted feedback submissions by sentiment label.
	FeedbackSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Accepted feedback submissions by sentiment label",
		},
		[]string{"sentiment"},
	)

	// ClassifierCacheHits counts classifier memoization cache hits.
	ClassifierCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_classifier_cache_hits_total",
			Help: "Classifier memoization cache hits",
		},
	)

	// ClassifierCacheMisses counts classifier memoization cache misses.
	ClassifierCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_classifier_cache_misses_total",
			Help: "Classifier memoization cache misses",
		},
	)

	// StoreDegradedMode is 1 when the feedback store runs on the in-memory
	// fallback, 0 when connected to the primary store.
	StoreDegradedMode = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedback_store_degraded_mode",
			Help: "1 when the feedback store runs on the in-memory fallback",
		},
	)

	// EventsDeletedTotal counts records removed by event deletions.
	EventsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_event_deletions_total",
			Help: "Feedback records removed by event deletions",
		},
	)
)
