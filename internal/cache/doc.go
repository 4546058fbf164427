// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package cache provides the in-memory TTL cache that sits in front of the
stats engine.

Entries are keyed by strings such as "stats:<user>:<contentType>:<period>".
Every watchlist mutation removes all of a user's entries with DeletePrefix,
so a cached result is never served after the data it was computed from has
changed.

Usage Example:

	c := cache.New(5 * time.Minute)
	defer c.Close()

	c.SetWithTTL("stats:u1:movie:overall", result, time.Minute)
	if v, ok := c.Get("stats:u1:movie:overall"); ok {
	    result = v.(*models.StatsResult)
	}

	c.DeletePrefix("stats:u1:")

Thread Safety:

All methods are safe for concurrent use. A background goroutine removes
expired entries until Close is called.
*/
package cache
