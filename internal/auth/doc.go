// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package auth provides account signup and login, JWT issuance and bearer
token authentication for the API.

Components:

  - JWTManager signs and validates HS256 tokens whose claims carry the user id
  - HashPassword and CheckPassword wrap bcrypt
  - Middleware rejects requests without a valid bearer token and stores the
    user id in the request context (see UserIDFromContext)
  - LoginLimiter throttles login attempts per client IP
  - Service implements signup, login and profile lookup on a UserStore

Usage:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	svc := auth.NewService(store, jwtManager, cfg.Security.BcryptCost)
	mw := auth.NewMiddleware(jwtManager)
	r.Get("/api/watchlist", mw.Authenticate(handler))
*/
package auth
