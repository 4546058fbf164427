// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/watchwise/internal/auth"
	"github.com/tomtom215/watchwise/internal/database"
	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/models"
)

// Signup handles POST /api/auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.Signup(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrUsernameTaken):
		respondError(w, http.StatusConflict, "Username already taken")
	case err != nil:
		logging.CtxErr(r.Context(), err).Msg("Signup failed")
		respondError(w, http.StatusInternalServerError, "Server error occurred during signup.")
	default:
		respondJSON(w, http.StatusCreated, resp)
	}
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case err != nil:
		logging.CtxErr(r.Context(), err).Msg("Login failed")
		respondError(w, http.StatusInternalServerError, "Server error occurred during login.")
	default:
		respondJSON(w, http.StatusOK, resp)
	}
}

// Me handles GET /api/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.auth.Me(r.Context(), auth.UserIDFromContext(r.Context()))
	switch {
	case errors.Is(err, database.ErrNotFound):
		// Token outlived its account.
		respondError(w, http.StatusUnauthorized, "User no longer exists")
	case err != nil:
		logging.CtxErr(r.Context(), err).Msg("Failed to load user profile")
		respondError(w, http.StatusInternalServerError, "Server error occurred while fetching user.")
	default:
		respondJSON(w, http.StatusOK, profile)
	}
}
