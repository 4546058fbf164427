// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package models defines the data structures shared across WatchWise.

Key Components:

  - WatchRecord: one tracked title per user (movie or TV show)
  - SeasonRecord / EpisodeRecord: nested per-season and per-episode state of a TV show
  - StatsResult: the aggregate returned by GET /api/stats
  - User: an account able to own watchlist records
  - Request types: boundary DTOs carrying validator tags

Content type selects which fields of a WatchRecord are meaningful. Movies use
the record-level Rating, Duration and CompletedDate. TV shows ignore those and
carry their progress in Seasons, each season having its own status and
completion date.

Completion dates follow status. SetStatus on a record or a season stamps the
completion time when the status becomes completed and clears it when the
status moves away from completed:

	rec.SetStatus(models.StatusCompleted, time.Now())
	// rec.CompletedDate != nil

	rec.SetStatus(models.StatusWatching, time.Now())
	// rec.CompletedDate == nil

JSON field names are camelCase to match the web client. BSON tags mirror them
for the MongoDB store.
*/
package models
