// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package events carries watchlist change notifications between components.

Every watchlist mutation publishes a WatchlistChanged event on the
"watchlist.changed" topic. The transport is Watermill's in-process
gochannel Pub/Sub; consumers run on a Watermill Router with panic recovery,
retry with exponential backoff, and correlation IDs propagated from the
HTTP request ID.

Publishing blocks until every subscriber has acknowledged the message, so
once a mutation returns, its stats cache entries are already gone.

Components:

  - Bus: Pub/Sub plus Router; Run blocks until the context is cancelled
  - CacheInvalidator: consumer that drops a user's cached stats

Usage Example:

	bus, err := events.NewBus(events.DefaultBusConfig(), logging.NewWatermillLogger())
	if err != nil {
	    return err
	}
	events.NewCacheInvalidator(statsCache).Register(bus)

	go bus.Run(ctx)
	<-bus.Running()

	bus.PublishWatchlistChanged(ctx, events.WatchlistChanged{UserID: id, Action: events.ActionAdded})
*/
package events
