// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package services provides suture.Service wrappers for WatchWise components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Optionally waits for a readiness channel before accepting connections

Event Router (EventRouterService):
  - Runs the watermill router that delivers watchlist events
  - A router cannot be restarted once stopped, so unexpected exits are
    reported with suture.ErrDoNotRestart

# Usage

	tree.AddMessagingService(services.NewEventRouterService(bus))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second,
	    services.WithStartAfter(bus.Running())))
*/
package services
