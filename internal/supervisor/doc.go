// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package supervisor runs the long-lived parts of the WatchWise server under a
suture v4 supervisor tree.

# Tree

	watchwise (root)
	├── messaging-layer
	│   └── EventRouterService (cache invalidation consumers)
	└── api-layer
	    └── HTTPServerService

Each layer counts failures on its own. A crashed service is restarted with
backoff once FailureThreshold is exceeded; failures decay at FailureDecay
per second.

# Startup Ordering

The HTTP server should not accept writes before the event router consumes
invalidation events, otherwise a stats response could be served from a
stale cache. Wire it with services.WithStartAfter:

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewEventRouterService(bus))
	tree.AddAPIService(services.NewHTTPServerService(srv, timeout,
	    services.WithStartAfter(bus.Running())))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

# Logging

Supervisor events (service failures, backoff, shutdown timeouts) are
logged through sutureslog into the zerolog-backed slog handler from the
logging package.
*/
package supervisor
