// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/metrics"
	"github.com/tomtom215/watchwise/internal/models"
)

// RecordFinder is the read side of the watch record store.
type RecordFinder interface {
	FindRecords(ctx context.Context, q models.RecordQuery) ([]models.WatchRecord, error)
}

// ResultCache stores computed results between requests.
type ResultCache interface {
	Get(key string) (interface{}, bool)
	SetWithTTL(key string, value interface{}, ttl time.Duration)
}

// Engine computes statistics for one user per call. It holds no per-request
// state and is safe for concurrent use.
type Engine struct {
	store    RecordFinder
	cache    ResultCache
	cacheTTL time.Duration
	now      func() time.Time
	loc      *time.Location
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache enables result caching for ttl. A zero ttl disables caching.
func WithCache(c ResultCache, ttl time.Duration) Option {
	return func(e *Engine) {
		e.cache = c
		e.cacheTTL = ttl
	}
}

// WithClock overrides the time source used for period bounds.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLocation sets the location used for period bounds and weekday
// bucketing. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		e.loc = loc
	}
}

// NewEngine creates an Engine reading from store.
func NewEngine(store RecordFinder, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CacheKeyPrefix returns the prefix shared by all cached results of a user.
func CacheKeyPrefix(userID string) string {
	return "stats:" + userID + ":"
}

// CacheKey returns the cache key of one result. Bounded periods include
// their start date, so a result never outlives its month or year.
func CacheKey(userID string, ct models.ContentType, p models.Period, since *time.Time) string {
	key := CacheKeyPrefix(userID) + string(ct) + ":" + string(p)
	if since != nil {
		key += ":" + since.Format("2006-01-02")
	}
	return key
}

// Compute returns the statistics of userID for content type ct over period p.
//
// ct must be movie or tv. Store failures are wrapped and returned with no
// partial result.
func (e *Engine) Compute(ctx context.Context, userID string, ct models.ContentType, p models.Period) (*models.StatsResult, error) {
	if err := ValidateContentType(string(ct)); err != nil {
		return nil, err
	}
	if p == "" {
		p = models.PeriodOverall
	}

	var since *time.Time
	if bound, ok := PeriodStart(p, e.now().In(e.loc)); ok {
		since = &bound
	}

	key := CacheKey(userID, ct, p, since)
	if e.cachingEnabled() {
		if v, ok := e.cache.Get(key); ok {
			if res, ok := v.(*models.StatsResult); ok {
				metrics.RecordStatsRequest(string(ct), string(p), metrics.StatsResultCached, 0)
				return res, nil
			}
		}
	}

	start := time.Now()
	res, err := e.compute(ctx, userID, ct, since)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordStatsRequest(string(ct), string(p), metrics.StatsResultError, elapsed)
		return nil, err
	}

	outcome := metrics.StatsResultComputed
	if res.IsEmpty() {
		outcome = metrics.StatsResultEmpty
	}
	metrics.RecordStatsRequest(string(ct), string(p), outcome, elapsed)

	logging.Ctx(ctx).Debug().
		Str("user_id", userID).
		Str("content_type", string(ct)).
		Str("period", string(p)).
		Bool("empty", res.IsEmpty()).
		Dur("duration", elapsed).
		Msg("Computed stats")

	if e.cachingEnabled() {
		e.cache.SetWithTTL(key, res, e.cacheTTL)
	}
	return res, nil
}

func (e *Engine) cachingEnabled() bool {
	return e.cache != nil && e.cacheTTL > 0
}

func (e *Engine) compute(ctx context.Context, userID string, ct models.ContentType, since *time.Time) (*models.StatsResult, error) {
	switch ct {
	case models.ContentTypeMovie:
		records, err := e.store.FindRecords(ctx, models.RecordQuery{
			UserID:         userID,
			ContentType:    models.ContentTypeMovie,
			Status:         models.StatusCompleted,
			CompletedSince: since,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch completed movies: %w", err)
		}
		return ComputeMovieStats(records, e.loc), nil

	default:
		shows, err := e.store.FindRecords(ctx, models.RecordQuery{
			UserID:      userID,
			ContentType: models.ContentTypeTV,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch tv shows: %w", err)
		}
		return ComputeTVStats(shows, since, e.loc), nil
	}
}
