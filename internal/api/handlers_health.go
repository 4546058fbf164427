// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/models"
)

// healthPingTimeout bounds the store ping of a health check.
const healthPingTimeout = 2 * time.Second

// Health handles GET /api/health. It answers 503 when the store ping fails.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	health := models.HealthStatus{
		Status:   "healthy",
		Version:  h.version,
		Database: "connected",
		Uptime:   time.Since(h.startTime).Seconds(),
	}
	status := http.StatusOK

	if h.store == nil {
		health.Status = "degraded"
		health.Database = "unavailable"
		status = http.StatusServiceUnavailable
	} else if err := h.store.Ping(ctx); err != nil {
		logging.CtxErr(r.Context(), err).Str("driver", h.store.Driver()).Msg("Health check: store ping failed")
		health.Status = "degraded"
		health.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, health)
}
