// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. The two cases are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when signing up with an existing username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrMissingSecret is returned by NewJWTManager for an empty secret.
	ErrMissingSecret = errors.New("JWT_SECRET is required but was empty")

	// ErrInvalidToken is returned for tokens that fail validation.
	ErrInvalidToken = errors.New("invalid token")
)
