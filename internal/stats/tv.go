// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import (
	"time"

	"github.com/tomtom215/watchwise/internal/models"
)

// completedSeason is one completed season carrying its parent show's identity.
type completedSeason struct {
	showID       string
	showTitle    string
	showGenres   []string
	completed    time.Time
	episodeCount int
	duration     int
	rating       float64
	rated        bool
}

// showSummary groups a show's completed seasons. Seasons without any
// rated episode count in seasonCount but not in the rating mean.
type showSummary struct {
	title        string
	genres       []string
	seasonCount  int
	ratedSeasons int
	ratingSum    float64
}

func (s *showSummary) avgRating() float64 {
	return mean(s.ratingSum, s.ratedSeasons)
}

// flattenSeasons returns one entry per completed season whose completion
// date is at or after since (nil means no bound), in show then season order.
func flattenSeasons(shows []models.WatchRecord, since *time.Time) []completedSeason {
	var out []completedSeason
	for i := range shows {
		show := &shows[i]
		for _, season := range show.Seasons {
			if !season.IsCompleted() || !withinPeriod(season.CompletedDate, since) {
				continue
			}
			out = append(out, completedSeason{
				showID:       show.ID,
				showTitle:    show.Title,
				showGenres:   show.Genre,
				completed:    *season.CompletedDate,
				episodeCount: season.EpisodeCount,
				duration:     season.Duration,
				rating:       season.Rating(),
				rated:        season.IsRated(),
			})
		}
	}
	return out
}

// ComputeTVStats reduces TV show records to a StatsResult. Seasons are
// filtered individually by their own completion date against since.
//
// Watch counts, time, average rating and the weekday histogram are per
// season. Best/worst, top lists and favorite genre are per show, with each
// show's genres counted once regardless of how many seasons it contributes.
// A show's ranking rating averages only its rated seasons.
func ComputeTVStats(shows []models.WatchRecord, since *time.Time, loc *time.Location) *models.StatsResult {
	seasons := flattenSeasons(shows, since)
	if len(seasons) == 0 {
		return models.NewEmptyStatsResult()
	}

	var (
		episodes  int
		watchTime int
		ratingSum float64
		days      = newWeekdayHistogram(loc)
		order     []string
		byShow    = make(map[string]*showSummary)
	)

	for _, s := range seasons {
		episodes += s.episodeCount
		watchTime += s.duration
		ratingSum += s.rating
		days.add(s.completed)

		summary, ok := byShow[s.showID]
		if !ok {
			summary = &showSummary{title: s.showTitle, genres: s.showGenres}
			byShow[s.showID] = summary
			order = append(order, s.showID)
		}
		summary.seasonCount++
		if s.rated {
			summary.ratedSeasons++
			summary.ratingSum += s.rating
		}
	}

	var (
		ext     extremes
		genres  = newGenreCounter()
		entries = make([]models.RankedEntry, 0, len(order))
	)
	for _, id := range order {
		summary := byShow[id]
		avg := summary.avgRating()
		ext.observe(summary.title, avg)
		genres.add(summary.genres...)
		entries = append(entries, models.RankedEntry{
			Title:  summary.title,
			Rating: avg,
		})
	}

	top5, top10 := rankTop(entries)
	roundRatings(top5)
	roundRatings(top10)

	return &models.StatsResult{
		Stats: &models.TVStats{
			WatchCount:         len(seasons),
			EpisodesWatched:    episodes,
			TVSeriesWatched:    len(order),
			AvgRate:            round2(mean(ratingSum, len(seasons))),
			BestRatedTVSeries:  ext.bestName,
			BestRate:           round2(ext.best),
			WorstRatedTVSeries: ext.worstName,
			WorstRate:          round2(ext.worst),
			FavoriteGenre:      genres.top(),
			WatchTime:          watchTime,
		},
		DailyActivity: days.buckets(),
		Top5:          top5,
		Top10:         top10,
	}
}
