// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import "errors"

var (
	// ErrMissingContentType is returned when no content type was supplied.
	ErrMissingContentType = errors.New("contentType query parameter is required")

	// ErrInvalidContentType is returned for anything other than movie or tv.
	ErrInvalidContentType = errors.New("contentType must be 'movie' or 'tv'")
)

// ValidateContentType checks a raw content type value before any store access.
func ValidateContentType(raw string) error {
	switch raw {
	case "":
		return ErrMissingContentType
	case "movie", "tv":
		return nil
	default:
		return ErrInvalidContentType
	}
}
