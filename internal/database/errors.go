// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package database

import "errors"

var (
	// ErrNotFound is returned when a record or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a write would violate a uniqueness rule.
	ErrDuplicate = errors.New("duplicate")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store closed")
)
