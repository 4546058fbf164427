// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import (
	"time"

	"github.com/tomtom215/watchwise/internal/models"
)

// PeriodStart returns the closed lower bound of p relative to now, in now's
// location. The second result is false for PeriodOverall, which has no bound.
func PeriodStart(p models.Period, now time.Time) (time.Time, bool) {
	switch p {
	case models.PeriodThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	case models.PeriodThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

func withinPeriod(t *time.Time, since *time.Time) bool {
	if t == nil {
		return false
	}
	return since == nil || !t.Before(*since)
}
