// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package metrics provides Prometheus instrumentation for WatchWise.

All collectors are registered on the default registry through promauto and
exposed at GET /metrics.

Metric Families:

  - watchwise_store_*: store operation latency and errors, by driver and operation
  - watchwise_api_*: HTTP request counts, latency and in-flight requests
  - watchwise_stats_*: stats computations by content type, period and outcome
  - watchwise_cache_*: stats cache hits, misses and invalidations
  - watchwise_circuit_breaker_*: state and transitions of the store breaker
  - watchwise_events_*: published and handled watchlist events
  - watchwise_auth_*: login and signup outcomes

Label cardinality is bounded: endpoints are chi route patterns, never raw paths.
*/
package metrics
