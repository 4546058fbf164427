// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/watchwise/internal/auth"
	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/models"
	"github.com/tomtom215/watchwise/internal/stats"
)

const statsServerError = "Server error occurred while fetching stats."

// Stats handles GET /api/stats?contentType=movie|tv&period=overall|thisYear|thisMonth.
// An unrecognized or missing period means overall.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rawType := q.Get("contentType")
	if err := stats.ValidateContentType(rawType); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ct := models.ContentType(rawType)
	period := models.ParsePeriod(q.Get("period"))

	res, err := h.stats.Compute(r.Context(), auth.UserIDFromContext(r.Context()), ct, period)
	if err != nil {
		if errors.Is(err, stats.ErrMissingContentType) || errors.Is(err, stats.ErrInvalidContentType) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logging.CtxErr(r.Context(), err).
			Str("content_type", rawType).
			Str("period", string(period)).
			Msg("Failed to compute stats")
		respondError(w, http.StatusInternalServerError, statsServerError)
		return
	}

	respondJSON(w, http.StatusOK, res)
}
