// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

// Package logging provides centralized zerolog-based structured logging for WatchWise.
//
// A single global logger is configured once at startup and shared by every
// package. JSON output is the default; console output is meant for local
// development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Error().Err(err).Msg("Store unavailable")
//
//	// Request-scoped logging picks up request_id and user_id from the context
//	logging.Ctx(ctx).Warn().Msg("Rejected request")
//
// # Adapters
//
// Two adapters route third-party logging into zerolog:
//   - NewSlogLogger returns a *slog.Logger for the supervision tree event hook
//   - NewWatermillLogger returns a watermill.LoggerAdapter for the event router
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
