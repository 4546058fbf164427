// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package api

import (
	"context"
	"time"

	"github.com/tomtom215/watchwise/internal/auth"
	"github.com/tomtom215/watchwise/internal/models"
	"github.com/tomtom215/watchwise/internal/watchlist"
)

// StatsComputer computes stats for a user.
type StatsComputer interface {
	Compute(ctx context.Context, userID string, ct models.ContentType, p models.Period) (*models.StatsResult, error)
}

// Pinger reports store health.
type Pinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_stats.go: GET /api/stats
//   - handlers_auth.go: signup, login, me
//   - handlers_watchlist.go: watchlist CRUD and season updates
//   - handlers_health.go: health check
type Handler struct {
	stats     StatsComputer
	watchlist *watchlist.Service
	auth      *auth.Service
	store     Pinger
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
func NewHandler(stats StatsComputer, wl *watchlist.Service, authSvc *auth.Service, store Pinger, version string) *Handler {
	return &Handler{
		stats:     stats,
		watchlist: wl,
		auth:      authSvc,
		store:     store,
		version:   version,
		startTime: time.Now(),
	}
}
