// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import (
	"math"
	"sort"

	"github.com/tomtom215/watchwise/internal/models"
)

const (
	top5Size  = 5
	top10Size = 10
)

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// rankTop sorts entries by rating descending, keeping input order among
// equal ratings, and returns the top 5 and top 10. top5 is always a prefix
// of top10.
func rankTop(entries []models.RankedEntry) (top5, top10 []models.RankedEntry) {
	sorted := make([]models.RankedEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	top10 = sorted[:min(len(sorted), top10Size)]
	top5 = append([]models.RankedEntry(nil), top10[:min(len(top10), top5Size)]...)
	return top5, top10
}

func roundRatings(entries []models.RankedEntry) {
	for i := range entries {
		entries[i].Rating = round2(entries[i].Rating)
	}
}

// extremes tracks the first maximum and first minimum seen.
type extremes struct {
	seen                bool
	bestName, worstName string
	best, worst         float64
}

func (e *extremes) observe(name string, v float64) {
	if !e.seen {
		e.seen = true
		e.bestName, e.best = name, v
		e.worstName, e.worst = name, v
		return
	}
	if v > e.best {
		e.bestName, e.best = name, v
	}
	if v < e.worst {
		e.worstName, e.worst = name, v
	}
}
