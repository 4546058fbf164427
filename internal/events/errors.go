// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package events

import "errors"

// ErrMissingUser is returned for events that do not name a user.
var ErrMissingUser = errors.New("event has no user id")
