// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package api provides the HTTP REST API layer for WatchWise.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for stats, auth, watchlist and health
  - ChiMiddleware: CORS (go-chi/cors) and per-IP rate limiting (go-chi/httprate)
  - Response helpers: JSON bodies encoded with goccy/go-json, errors as {"error": "..."}

Routes:

	GET    /api/health
	POST   /api/auth/signup
	POST   /api/auth/login                              (per-IP login limiter)
	GET    /api/auth/me                                 (auth)
	GET    /api/stats?contentType=movie|tv&period=...   (auth)
	GET    /api/watchlist?contentType=&status=          (auth)
	POST   /api/watchlist                               (auth)
	DELETE /api/watchlist                               (auth)
	GET    /api/watchlist/{id}                          (auth)
	PATCH  /api/watchlist/{id}                          (auth)
	DELETE /api/watchlist/{id}                          (auth)
	PATCH  /api/watchlist/{id}/seasons/{seasonNumber}   (auth)
	GET    /metrics

Middleware Stack (global, in order):

 1. Request ID (X-Request-ID, logging context)
 2. Real IP
 3. Structured request logging
 4. Panic recovery
 5. CORS
 6. Prometheus metrics (per route pattern)

Usage Example:

	handler := api.NewHandler(engine, watchlistSvc, authSvc, store, version)
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager), limiter, api.ChiConfigFromSecurity(&cfg.Security))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
