// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package middleware provides HTTP middleware shared by every WatchWise route.

Key Components:

  - Request ID: accepts or generates an X-Request-ID and threads it into the
    logging context so every log line for a request carries it
  - Prometheus Metrics: request counts, latency and in-flight gauge, labelled
    by chi route pattern

The middleware uses the http.HandlerFunc shape; the api package adapts it to
chi's func(http.Handler) http.Handler with a small wrapper.

Usage Example:

	handler := middleware.RequestID(middleware.PrometheusMetrics(statsHandler))
*/
package middleware
