// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package models

// SignupRequest creates an account.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest exchanges credentials for a token.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AddWatchlistRequest adds a title to the caller's watchlist.
// Metadata is supplied by the client from its TMDB lookup.
type AddWatchlistRequest struct {
	TMDBID      int64              `json:"tmdbId" validate:"required,gt=0"`
	ContentType ContentType        `json:"contentType" validate:"required,oneof=movie tv"`
	Title       string             `json:"title" validate:"required,max=500"`
	Overview    string             `json:"overview" validate:"max=5000"`
	PosterPath  string             `json:"posterPath" validate:"max=500"`
	ReleaseDate string             `json:"releaseDate" validate:"max=32"`
	Genre       []string           `json:"genre" validate:"max=20,dive,max=100"`
	Duration    int                `json:"duration" validate:"gte=0"`
	Status      WatchStatus        `json:"status" validate:"omitempty,oneof=planned watching completed"`
	Rating      *float64           `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Seasons     []AddSeasonRequest `json:"seasons" validate:"max=200,dive"`
}

// AddSeasonRequest describes one season when adding a TV show.
type AddSeasonRequest struct {
	SeasonNumber int         `json:"seasonNumber" validate:"gte=0"`
	EpisodeCount int         `json:"episodeCount" validate:"gte=0"`
	Duration     int         `json:"duration" validate:"gte=0"`
	Status       WatchStatus `json:"status" validate:"omitempty,oneof=planned watching completed"`
}

// UpdateWatchlistRequest patches a record. Nil fields are left unchanged.
type UpdateWatchlistRequest struct {
	Status   *WatchStatus `json:"status" validate:"omitempty,oneof=planned watching completed"`
	Rating   *float64     `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Favorite *bool        `json:"favorite"`
}

// UpdateSeasonRequest patches one season of a TV record.
type UpdateSeasonRequest struct {
	Status   *WatchStatus           `json:"status" validate:"omitempty,oneof=planned watching completed"`
	Episodes []EpisodeRatingRequest `json:"episodes" validate:"max=500,dive"`
}

// EpisodeRatingRequest sets or clears one episode rating. A nil Rating
// clears it.
type EpisodeRatingRequest struct {
	EpisodeNumber int      `json:"episodeNumber" validate:"gte=0"`
	Title         string   `json:"title" validate:"max=500"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
}

// WatchlistFilter narrows a watchlist listing.
type WatchlistFilter struct {
	ContentType ContentType `json:"contentType" validate:"omitempty,oneof=movie tv"`
	Status      WatchStatus `json:"status" validate:"omitempty,oneof=planned watching completed"`
}
