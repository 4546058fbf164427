// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package stats computes per-user watch statistics behind GET /api/stats.

The computation is a single linear pipeline: one store fetch followed by an
in-memory reduction. Movies are reduced per record. TV shows are first
flattened to one entry per completed season, filtered by each season's own
completion date, and then grouped back by show for show-level rankings.

Pipeline Overview:

 1. Resolve the period lower bound (start of year / month in local time)
 2. Fetch records from the store (movies: completed only, bounded in the query;
    TV: all shows, bounded per season after flattening)
 3. Reduce counts, averages, best/worst, favorite genre
 4. Bucket completions by weekday (Mon..Sun)
 5. Rank the top 5 and top 10

An empty filtered set is not an error. It produces the "no data" result whose
stats object is {} so clients can tell it apart from zeroed statistics.

Tie-breaking:

Best/worst and favorite genre ties resolve to the first candidate in input
order. Genre frequency is counted with an explicit ordered sequence of
(genre, count) pairs, so the outcome does not depend on map iteration.

Usage:

	engine := stats.NewEngine(store, stats.WithCache(statsCache, 5*time.Minute))
	res, err := engine.Compute(ctx, userID, models.ContentTypeMovie, models.PeriodThisYear)

The reduction functions (ComputeMovieStats, ComputeTVStats) are pure and can be
called directly on a record snapshot.
*/
package stats
