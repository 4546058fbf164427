// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package main is the entry point for the WatchWise server.

WatchWise keeps per-user watchlists of movies and TV shows and serves
aggregate viewing statistics from GET /api/stats.

# Startup

 1. Configuration: koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, JSON or console output
 3. Database: BadgerDB (embedded) or MongoDB, optionally behind a circuit breaker
 4. Stats cache and event bus: watermill GoChannel with a cache invalidation consumer
 5. Services: stats engine, watchlist, authentication
 6. HTTP: chi router with the middleware stack from the api package
 7. Supervisor tree: suture v4 runs the event router and the HTTP server

SIGINT or SIGTERM cancels the root context. The HTTP server drains
connections within SHUTDOWN_TIMEOUT, then the event bus, the cache and
the database are closed in reverse order.

# Configuration

	PORT=5000
	DB_DRIVER=badger              # badger or mongo
	BADGER_PATH=/data/watchwise
	MONGODB_URI=mongodb://localhost:27017
	JWT_SECRET=<32+ chars>
	STATS_CACHE_TTL=5m
	STATS_TIMEZONE=Local
	LOG_LEVEL=info
	LOG_FORMAT=json

See the config package for the full list.
*/
package main
