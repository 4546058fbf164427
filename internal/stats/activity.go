// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import (
	"time"

	"github.com/tomtom215/watchwise/internal/models"
)

// dayNames is indexed by time.Weekday (Sunday = 0).
var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// outputOrder lists weekdays Monday first.
var outputOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// weekdayHistogram counts completions per local weekday.
type weekdayHistogram struct {
	loc    *time.Location
	counts [7]int
}

func newWeekdayHistogram(loc *time.Location) *weekdayHistogram {
	if loc == nil {
		loc = time.Local
	}
	return &weekdayHistogram{loc: loc}
}

func (h *weekdayHistogram) add(t time.Time) {
	h.counts[t.In(h.loc).Weekday()]++
}

// buckets returns exactly seven entries, Mon..Sun.
func (h *weekdayHistogram) buckets() []models.DailyActivity {
	out := make([]models.DailyActivity, 0, len(outputOrder))
	for _, wd := range outputOrder {
		out = append(out, models.DailyActivity{Day: dayNames[wd], Count: h.counts[wd]})
	}
	return out
}
