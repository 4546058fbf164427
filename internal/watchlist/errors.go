// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package watchlist

import "errors"

var (
	// ErrItemNotFound is returned when the record does not exist for the user.
	ErrItemNotFound = errors.New("watchlist item not found")

	// ErrAlreadyInWatchlist is returned when adding a title twice.
	ErrAlreadyInWatchlist = errors.New("item already in watchlist")

	// ErrNotTVShow is returned for season operations on a movie.
	ErrNotTVShow = errors.New("seasons can only be tracked on tv shows")

	// ErrSeasonNotFound is returned when the show has no such season.
	ErrSeasonNotFound = errors.New("season not found")
)
