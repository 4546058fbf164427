// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/watchwise/internal/models"
)

// fakeStore filters an in-memory snapshot with RecordQuery.Matches.
type fakeStore struct {
	mu      sync.Mutex
	records []models.WatchRecord
	calls   int
	err     error
}

func (f *fakeStore) FindRecords(_ context.Context, q models.RecordQuery) ([]models.WatchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.WatchRecord
	for i := range f.records {
		if q.Matches(&f.records[i]) {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// mapCache is a minimal ResultCache for engine tests.
type mapCache struct {
	mu      sync.Mutex
	entries map[string]interface{}
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]interface{})}
}

func (c *mapCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *mapCache) SetWithTTL(key string, value interface{}, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func rating(v float64) *float64 { return &v }

func completedMovie(id, title string, r float64, duration int, completed *time.Time, genres ...string) models.WatchRecord {
	return models.WatchRecord{
		ID:            id,
		UserID:        "user-1",
		ContentType:   models.ContentTypeMovie,
		Title:         title,
		Genre:         genres,
		Duration:      duration,
		Status:        models.StatusCompleted,
		Rating:        r,
		PosterPath:    "/" + id + ".jpg",
		CompletedDate: completed,
	}
}

func completedSeasonRecord(number, episodes, duration int, completed *time.Time, ratings ...float64) models.SeasonRecord {
	eps := make([]models.EpisodeRecord, 0, len(ratings))
	for i, r := range ratings {
		eps = append(eps, models.EpisodeRecord{EpisodeNumber: i + 1, Rating: rating(r)})
	}
	return models.SeasonRecord{
		SeasonNumber:  number,
		Status:        models.StatusCompleted,
		CompletedDate: completed,
		EpisodeCount:  episodes,
		Duration:      duration,
		Episodes:      eps,
	}
}

func show(id, title string, genres []string, seasons ...models.SeasonRecord) models.WatchRecord {
	return models.WatchRecord{
		ID:          id,
		UserID:      "user-1",
		ContentType: models.ContentTypeTV,
		Title:       title,
		Genre:       genres,
		Status:      models.StatusWatching,
		Seasons:     seasons,
	}
}

func dayCount(res *models.StatsResult, day string) int {
	for _, d := range res.DailyActivity {
		if d.Day == day {
			return d.Count
		}
	}
	return -1
}
