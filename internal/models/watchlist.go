// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package models

import (
	"time"
)

// ContentType identifies whether a WatchRecord is a movie or a TV show.
type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeTV    ContentType = "tv"
)

// Valid reports whether c is one of the known content types.
func (c ContentType) Valid() bool {
	return c == ContentTypeMovie || c == ContentTypeTV
}

// WatchStatus is the progress state of a record or a season.
type WatchStatus string

const (
	StatusPlanned   WatchStatus = "planned"
	StatusWatching  WatchStatus = "watching"
	StatusCompleted WatchStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s WatchStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusWatching, StatusCompleted:
		return true
	}
	return false
}

// Rating bounds shared by movie and episode ratings.
const (
	MinRating = 0
	MaxRating = 10
)

// WatchRecord is a single title on a user's watchlist.
//
// ContentType is fixed at creation. For movies Rating, Duration and
// CompletedDate describe the whole title; for TV shows progress lives in
// Seasons and the record-level Rating is not used by statistics.
type WatchRecord struct {
	ID            string         `json:"id" bson:"_id"`
	UserID        string         `json:"user" bson:"user"`
	TMDBID        int64          `json:"tmdbId" bson:"tmdbId"`
	ContentType   ContentType    `json:"contentType" bson:"contentType"`
	Title         string         `json:"title" bson:"title"`
	Overview      string         `json:"overview,omitempty" bson:"overview,omitempty"`
	PosterPath    string         `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
	ReleaseDate   string         `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	Genre         []string       `json:"genre" bson:"genre"`
	Duration      int            `json:"duration" bson:"duration"`
	Status        WatchStatus    `json:"status" bson:"status"`
	Rating        float64        `json:"rating" bson:"rating"`
	Favorite      bool           `json:"favorite" bson:"favorite"`
	CompletedDate *time.Time     `json:"completedDate" bson:"completedDate"`
	Seasons       []SeasonRecord `json:"seasons,omitempty" bson:"seasons,omitempty"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// SeasonRecord tracks one season of a TV show.
type SeasonRecord struct {
	SeasonNumber  int             `json:"seasonNumber" bson:"seasonNumber"`
	Status        WatchStatus     `json:"status" bson:"status"`
	CompletedDate *time.Time      `json:"completedDate" bson:"completedDate"`
	EpisodeCount  int             `json:"episodeCount" bson:"episodeCount"`
	Duration      int             `json:"duration" bson:"duration"`
	Episodes      []EpisodeRecord `json:"episodes" bson:"episodes"`
}

// EpisodeRecord holds the optional user rating of one episode.
type EpisodeRecord struct {
	EpisodeNumber int      `json:"episodeNumber" bson:"episodeNumber"`
	Title         string   `json:"title,omitempty" bson:"title,omitempty"`
	Rating        *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
}

// RecordQuery selects watch records of one user. Zero-valued fields match
// everything. CompletedSince is a closed lower bound on CompletedDate and
// implies a non-nil CompletedDate.
type RecordQuery struct {
	UserID         string
	ContentType    ContentType
	Status         WatchStatus
	CompletedSince *time.Time
}

// Matches reports whether r satisfies q.
func (q RecordQuery) Matches(r *WatchRecord) bool {
	if q.UserID != "" && r.UserID != q.UserID {
		return false
	}
	if q.ContentType != "" && r.ContentType != q.ContentType {
		return false
	}
	if q.Status != "" && r.Status != q.Status {
		return false
	}
	if q.CompletedSince != nil {
		if r.CompletedDate == nil || r.CompletedDate.Before(*q.CompletedSince) {
			return false
		}
	}
	return true
}

// SetStatus moves the record to status s. The completion time is stamped
// with now when s is completed and the record was not already completed,
// and cleared when s is anything else.
func (r *WatchRecord) SetStatus(s WatchStatus, now time.Time) {
	r.CompletedDate = nextCompletedDate(r.Status, s, r.CompletedDate, now)
	r.Status = s
}

// SetStatus applies the same completion-date rules as WatchRecord.SetStatus
// at season level.
func (s *SeasonRecord) SetStatus(status WatchStatus, now time.Time) {
	s.CompletedDate = nextCompletedDate(s.Status, status, s.CompletedDate, now)
	s.Status = status
}

func nextCompletedDate(prev, next WatchStatus, current *time.Time, now time.Time) *time.Time {
	if next != StatusCompleted {
		return nil
	}
	if prev == StatusCompleted && current != nil {
		return current
	}
	t := now
	return &t
}

// Season returns a pointer to the season with the given number, or nil.
func (r *WatchRecord) Season(number int) *SeasonRecord {
	for i := range r.Seasons {
		if r.Seasons[i].SeasonNumber == number {
			return &r.Seasons[i]
		}
	}
	return nil
}

// Rating returns the mean of the season's rated episodes, or 0 when no
// episode carries a rating.
func (s SeasonRecord) Rating() float64 {
	var sum float64
	var n int
	for _, ep := range s.Episodes {
		if ep.Rating == nil {
			continue
		}
		sum += *ep.Rating
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// IsRated reports whether at least one episode carries a rating.
func (s SeasonRecord) IsRated() bool {
	for _, ep := range s.Episodes {
		if ep.Rating != nil {
			return true
		}
	}
	return false
}

// IsCompleted reports whether the season counts toward statistics.
func (s SeasonRecord) IsCompleted() bool {
	return s.Status == StatusCompleted && s.CompletedDate != nil
}
