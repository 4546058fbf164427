// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package models

// Period is the completion-date window applied by the stats engine.
type Period string

const (
	PeriodOverall   Period = "overall"
	PeriodThisYear  Period = "thisYear"
	PeriodThisMonth Period = "thisMonth"
)

// ParsePeriod maps a query value to a Period. Empty and unrecognized
// values fall back to PeriodOverall.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodThisYear:
		return PeriodThisYear
	case PeriodThisMonth:
		return PeriodThisMonth
	default:
		return PeriodOverall
	}
}

// StatsResult is the body of GET /api/stats.
//
// Stats holds *MovieStats, *TVStats, or EmptyStats when nothing matched the
// filter. The empty result carries no Top10 so it serializes as
// {"stats":{},"dailyActivity":[],"top5":[]}.
type StatsResult struct {
	Stats         any             `json:"stats"`
	DailyActivity []DailyActivity `json:"dailyActivity"`
	Top5          []RankedEntry   `json:"top5"`
	Top10         []RankedEntry   `json:"top10,omitempty"`
}

// EmptyStats marks a result with no matching records. It encodes as {}.
type EmptyStats struct{}

// NewEmptyStatsResult returns the "no data" result.
func NewEmptyStatsResult() *StatsResult {
	return &StatsResult{
		Stats:         EmptyStats{},
		DailyActivity: []DailyActivity{},
		Top5:          []RankedEntry{},
	}
}

// IsEmpty reports whether r is the "no data" result.
func (r *StatsResult) IsEmpty() bool {
	_, ok := r.Stats.(EmptyStats)
	return ok
}

// MovieStats summarizes completed movies.
type MovieStats struct {
	WatchCount      int     `json:"watchCount"`
	AvgRate         float64 `json:"avgRate"`
	BestRatedMovie  string  `json:"bestRatedMovie"`
	BestRate        float64 `json:"bestRate"`
	WorstRatedMovie string  `json:"worstRatedMovie"`
	WorstRate       float64 `json:"worstRate"`
	FavoriteGenre   string  `json:"favoriteGenre"`
	WatchTime       int     `json:"watchTime"`
}

// TVStats summarizes completed TV seasons. WatchCount counts seasons,
// TVSeriesWatched counts distinct shows.
type TVStats struct {
	WatchCount         int     `json:"watchCount"`
	EpisodesWatched    int     `json:"episodesWatched"`
	TVSeriesWatched    int     `json:"tvSeriesWatched"`
	AvgRate            float64 `json:"avgRate"`
	BestRatedTVSeries  string  `json:"bestRatedTVSeries"`
	BestRate           float64 `json:"bestRate"`
	WorstRatedTVSeries string  `json:"worstRatedTVSeries"`
	WorstRate          float64 `json:"worstRate"`
	FavoriteGenre      string  `json:"favoriteGenre"`
	WatchTime          int     `json:"watchTime"`
}

// DailyActivity is one weekday bucket of the completion histogram.
type DailyActivity struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// RankedEntry is one row of a top-N list. Movie rows carry ID and
// PosterPath; show rows only Title and Rating.
type RankedEntry struct {
	ID         string  `json:"id,omitempty"`
	Title      string  `json:"title"`
	Rating     float64 `json:"rating"`
	PosterPath string  `json:"posterPath,omitempty"`
}
