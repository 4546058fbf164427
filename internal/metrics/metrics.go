// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchwise_store_operation_duration_seconds",
			Help:    "Duration of watch record store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver", "operation"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchwise_store_operation_errors_total",
			Help: "Total number of failed store operations",
		},
		[]string{"driver", "operation"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchwise_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchwise_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "watchwise_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Stats Engine Metrics
	StatsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchwise_stats_requests_total",
			Help: "Total number of stats computations by outcome",
		},
		[]string{"content_type", "period", "result"}, // result: computed, empty, cached, error
	)

	StatsComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchwise_stats_compute_duration_seconds",
			Help:    "Duration of uncached stats computations including the store fetch",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"content_type"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "watchwise_cache_hits_total",
			Help: "Total number of stats cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "watchwise_cache_misses_total",
			Help: "Total number of stats cache misses",
		},
	)

	CacheInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "watchwise_cache_invalidated_entries_total",
			Help: "Total number of cache entries removed by invalidation",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "watchwise_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchwise_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "watchwise_circuit_breaker_consecutive_failures",
			Help: "Number of consecutive failures seen by the circuit breaker",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchwise_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchwise_events_published_total",
			Help: "Total number of watchlist events published",
		},
		[]string{"topic", "result"},
	)

	EventsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchwise_events_handled_total",
			Help: "Total number of watchlist events handled by subscribers",
		},
		[]string{"handler", "result"},
	)

	// Auth Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchwise_auth_attempts_total",
			Help: "Total number of signup and login attempts by outcome",
		},
		[]string{"action", "result"}, // action: signup, login
	)
)

// Stats outcome label values.
const (
	StatsResultComputed = "computed"
	StatsResultEmpty    = "empty"
	StatsResultCached   = "cached"
	StatsResultError    = "error"
)

// RecordStoreOperation records the duration and outcome of a store call.
func RecordStoreOperation(driver, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(driver, operation).Inc()
	}
}

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStatsRequest records one stats request. Duration is observed only
// for computations that reached the store.
func RecordStatsRequest(contentType, period, result string, duration time.Duration) {
	StatsRequestsTotal.WithLabelValues(contentType, period, result).Inc()
	if result != StatsResultCached {
		StatsComputeDuration.WithLabelValues(contentType).Observe(duration.Seconds())
	}
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordCacheInvalidation records n removed cache entries.
func RecordCacheInvalidation(n int) {
	CacheInvalidations.Add(float64(n))
}

// RecordEventPublished records a publish attempt.
func RecordEventPublished(topic string, err error) {
	EventsPublished.WithLabelValues(topic, resultLabel(err)).Inc()
}

// RecordEventHandled records a subscriber outcome.
func RecordEventHandled(handler string, err error) {
	EventsHandled.WithLabelValues(handler, resultLabel(err)).Inc()
}

// RecordAuthAttempt records a signup or login outcome.
func RecordAuthAttempt(action, result string) {
	AuthAttempts.WithLabelValues(action, result).Inc()
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
