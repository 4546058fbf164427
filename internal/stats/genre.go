// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

// genreCounter is an insertion-ordered frequency count.
type genreCounter struct {
	index  map[string]int
	counts []genreCount
}

type genreCount struct {
	genre string
	count int
}

func newGenreCounter() *genreCounter {
	return &genreCounter{index: make(map[string]int)}
}

func (c *genreCounter) add(genres ...string) {
	for _, g := range genres {
		if i, ok := c.index[g]; ok {
			c.counts[i].count++
			continue
		}
		c.index[g] = len(c.counts)
		c.counts = append(c.counts, genreCount{genre: g, count: 1})
	}
}

// top returns the most frequent genre. Ties go to the genre seen first.
// Returns "" when nothing was counted.
func (c *genreCounter) top() string {
	best := ""
	bestCount := 0
	for _, gc := range c.counts {
		if gc.count > bestCount {
			best = gc.genre
			bestCount = gc.count
		}
	}
	return best
}
