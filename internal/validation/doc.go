// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide because it caches struct
// metadata. Field names in error messages use the JSON tag, so clients see
// "contentType is required" rather than the Go field name.
//
// Example usage:
//
//	var req models.AddWatchlistRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondError(w, http.StatusBadRequest, verr.Error(), verr.Fields())
//	    return
//	}
package validation
