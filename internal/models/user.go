// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package models

import (
	"time"
)

// User is an account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// UserProfile is the public view of a User.
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Profile returns the public view of u.
func (u *User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Username: u.Username}
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
