// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/watchwise/internal/auth"
	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/models"
	"github.com/tomtom215/watchwise/internal/validation"
	"github.com/tomtom215/watchwise/internal/watchlist"
)

// ListWatchlist handles GET /api/watchlist?contentType=&status=.
func (h *Handler) ListWatchlist(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.WatchlistFilter{
		ContentType: models.ContentType(q.Get("contentType")),
		Status:      models.WatchStatus(q.Get("status")),
	}
	if verr := validation.ValidateStruct(&filter); verr != nil {
		respondValidationError(w, verr)
		return
	}

	records, err := h.watchlist.List(r.Context(), auth.UserIDFromContext(r.Context()), filter)
	if err != nil {
		h.watchlistServerError(w, r, err, "Failed to list watchlist")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// AddToWatchlist handles POST /api/watchlist.
func (h *Handler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	var req models.AddWatchlistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := h.watchlist.Add(r.Context(), auth.UserIDFromContext(r.Context()), req)
	if err != nil {
		h.respondWatchlistError(w, r, err, "Failed to add to watchlist")
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// GetWatchlistItem handles GET /api/watchlist/{id}.
func (h *Handler) GetWatchlistItem(w http.ResponseWriter, r *http.Request) {
	rec, err := h.watchlist.Get(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWatchlistError(w, r, err, "Failed to get watchlist item")
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// UpdateWatchlistItem handles PATCH /api/watchlist/{id}.
func (h *Handler) UpdateWatchlistItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateWatchlistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := h.watchlist.Update(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondWatchlistError(w, r, err, "Failed to update watchlist item")
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// UpdateSeason handles PATCH /api/watchlist/{id}/seasons/{seasonNumber}.
func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	seasonNumber, err := strconv.Atoi(chi.URLParam(r, "seasonNumber"))
	if err != nil || seasonNumber < 0 {
		respondError(w, http.StatusBadRequest, "seasonNumber must be a non-negative integer")
		return
	}

	var req models.UpdateSeasonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := h.watchlist.UpdateSeason(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id"), seasonNumber, req)
	if err != nil {
		h.respondWatchlistError(w, r, err, "Failed to update season")
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// RemoveWatchlistItem handles DELETE /api/watchlist/{id}.
func (h *Handler) RemoveWatchlistItem(w http.ResponseWriter, r *http.Request) {
	if err := h.watchlist.Remove(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.respondWatchlistError(w, r, err, "Failed to remove watchlist item")
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "Item removed from watchlist"})
}

// ClearWatchlist handles DELETE /api/watchlist.
func (h *Handler) ClearWatchlist(w http.ResponseWriter, r *http.Request) {
	n, err := h.watchlist.Clear(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		h.watchlistServerError(w, r, err, "Failed to clear watchlist")
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "Watchlist cleared", Deleted: &n})
}

// respondWatchlistError maps watchlist domain errors to status codes.
func (h *Handler) respondWatchlistError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	switch {
	case errors.Is(err, watchlist.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Watchlist item not found")
	case errors.Is(err, watchlist.ErrAlreadyInWatchlist):
		respondError(w, http.StatusConflict, "Item already in watchlist")
	case errors.Is(err, watchlist.ErrSeasonNotFound):
		respondError(w, http.StatusNotFound, "Season not found")
	case errors.Is(err, watchlist.ErrNotTVShow):
		respondError(w, http.StatusBadRequest, "Seasons can only be updated on TV shows")
	default:
		h.watchlistServerError(w, r, err, logMsg)
	}
}

func (h *Handler) watchlistServerError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	logging.CtxErr(r.Context(), err).Msg(logMsg)
	respondError(w, http.StatusInternalServerError, "Server error occurred while updating watchlist.")
}
