// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package models

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse acknowledges a mutation.
type MessageResponse struct {
	Message string `json:"message"`
	Deleted *int   `json:"deleted,omitempty"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status   string  `json:"status"`
	Version  string  `json:"version"`
	Database string  `json:"database"`
	Uptime   float64 `json:"uptime_seconds"`
}
