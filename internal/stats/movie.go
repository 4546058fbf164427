// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import (
	"time"

	"github.com/tomtom215/watchwise/internal/models"
)

// ComputeMovieStats reduces completed movie records to a StatsResult.
//
// The caller is expected to pass only completed records inside the period;
// records without a completion date still count but do not land in the
// weekday histogram. Input order decides ties.
func ComputeMovieStats(records []models.WatchRecord, loc *time.Location) *models.StatsResult {
	if len(records) == 0 {
		return models.NewEmptyStatsResult()
	}

	var (
		ratingSum float64
		watchTime int
		ext       extremes
		genres    = newGenreCounter()
		days      = newWeekdayHistogram(loc)
		entries   = make([]models.RankedEntry, 0, len(records))
	)

	for i := range records {
		rec := &records[i]
		ratingSum += rec.Rating
		watchTime += rec.Duration
		ext.observe(rec.Title, rec.Rating)
		genres.add(rec.Genre...)
		if rec.CompletedDate != nil {
			days.add(*rec.CompletedDate)
		}
		entries = append(entries, models.RankedEntry{
			ID:         rec.ID,
			Title:      rec.Title,
			Rating:     rec.Rating,
			PosterPath: rec.PosterPath,
		})
	}

	top5, top10 := rankTop(entries)

	return &models.StatsResult{
		Stats: &models.MovieStats{
			WatchCount:      len(records),
			AvgRate:         round2(mean(ratingSum, len(records))),
			BestRatedMovie:  ext.bestName,
			BestRate:        ext.best,
			WorstRatedMovie: ext.worstName,
			WorstRate:       ext.worst,
			FavoriteGenre:   genres.top(),
			WatchTime:       watchTime,
		},
		DailyActivity: days.buckets(),
		Top5:          top5,
		Top10:         top10,
	}
}
