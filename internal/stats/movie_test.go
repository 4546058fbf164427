// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package stats

import (
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/watchwise/internal/models"
)

func TestComputeMovieStats_OverallScenario(t *testing.T) {
	t.Parallel()

	records := []models.WatchRecord{
		completedMovie("a", "A", 8, 120, date(2024, time.January, 10), "Action"),
		completedMovie("b", "B", 4, 90, date(2024, time.January, 10), "Action"),
	}

	res := ComputeMovieStats(records, time.UTC)
	s, ok := res.Stats.(*models.MovieStats)
	if !ok {
		t.Fatalf("expected *MovieStats, got %T", res.Stats)
	}

	if s.WatchCount != 2 {
		t.Errorf("watchCount = %d, want 2", s.WatchCount)
	}
	if s.AvgRate != 6 {
		t.Errorf("avgRate = %v, want 6", s.AvgRate)
	}
	if s.BestRatedMovie != "A" || s.BestRate != 8 {
		t.Errorf("best = %q/%v, want A/8", s.BestRatedMovie, s.BestRate)
	}
	if s.WorstRatedMovie != "B" || s.WorstRate != 4 {
		t.Errorf("worst = %q/%v, want B/4", s.WorstRatedMovie, s.WorstRate)
	}
	if s.WatchTime != 210 {
		t.Errorf("watchTime = %d, want 210", s.WatchTime)
	}
	if s.FavoriteGenre != "Action" {
		t.Errorf("favoriteGenre = %q, want Action", s.FavoriteGenre)
	}

	if len(res.DailyActivity) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(res.DailyActivity))
	}
	for _, d := range res.DailyActivity {
		want := 0
		if d.Day == "Wed" {
			want = 2
		}
		if d.Count != want {
			t.Errorf("day %s count = %d, want %d", d.Day, d.Count, want)
		}
	}

	if len(res.Top5) != 2 || res.Top5[0].Title != "A" || res.Top5[1].Title != "B" {
		t.Fatalf("unexpected top5: %+v", res.Top5)
	}
	if res.Top5[0].ID != "a" || res.Top5[0].PosterPath != "/a.jpg" || res.Top5[0].Rating != 8 {
		t.Errorf("unexpected top5[0]: %+v", res.Top5[0])
	}
}

func TestComputeMovieStats_Empty(t *testing.T) {
	t.Parallel()

	res := ComputeMovieStats(nil, time.UTC)
	if !res.IsEmpty() {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if len(res.DailyActivity) != 0 || len(res.Top5) != 0 || res.Top10 != nil {
		t.Errorf("expected empty collections, got %+v", res)
	}
}

func TestComputeMovieStats_DayOrder(t *testing.T) {
	t.Parallel()

	res := ComputeMovieStats([]models.WatchRecord{
		completedMovie("a", "A", 5, 100, date(2024, time.January, 7)), // Sunday
	}, time.UTC)

	want := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, d := range res.DailyActivity {
		if d.Day != want[i] {
			t.Errorf("bucket %d = %s, want %s", i, d.Day, want[i])
		}
	}
	if dayCount(res, "Sun") != 1 {
		t.Errorf("expected Sunday bucket to be 1, got %d", dayCount(res, "Sun"))
	}
}

func TestComputeMovieStats_WeekdayUsesLocation(t *testing.T) {
	t.Parallel()

	// 2024-01-10 02:00 UTC is still Tuesday in New York.
	loc := time.FixedZone("EST", -5*60*60)
	completed := time.Date(2024, time.January, 10, 2, 0, 0, 0, time.UTC)

	res := ComputeMovieStats([]models.WatchRecord{
		completedMovie("a", "A", 5, 100, &completed),
	}, loc)

	if dayCount(res, "Tue") != 1 || dayCount(res, "Wed") != 0 {
		t.Errorf("expected Tuesday in EST, got %+v", res.DailyActivity)
	}
}

func TestComputeMovieStats_Ties(t *testing.T) {
	t.Parallel()

	records := []models.WatchRecord{
		completedMovie("1", "First High", 9, 100, date(2024, time.May, 1), "Drama", "Comedy"),
		completedMovie("2", "Second High", 9, 100, date(2024, time.May, 2), "Comedy", "Drama"),
		completedMovie("3", "First Low", 2, 100, date(2024, time.May, 3), "Horror"),
		completedMovie("4", "Second Low", 2, 100, date(2024, time.May, 4), "Horror"),
	}

	res := ComputeMovieStats(records, time.UTC)
	s := res.Stats.(*models.MovieStats)

	if s.BestRatedMovie != "First High" {
		t.Errorf("bestRatedMovie = %q, want First High", s.BestRatedMovie)
	}
	if s.WorstRatedMovie != "First Low" {
		t.Errorf("worstRatedMovie = %q, want First Low", s.WorstRatedMovie)
	}
	// Drama, Comedy and Horror all appear twice; Drama is seen first.
	if s.FavoriteGenre != "Drama" {
		t.Errorf("favoriteGenre = %q, want Drama", s.FavoriteGenre)
	}
	// Stable sort keeps input order for equal ratings.
	if res.Top5[0].Title != "First High" || res.Top5[1].Title != "Second High" {
		t.Errorf("unexpected top ordering: %+v", res.Top5)
	}
}

func TestComputeMovieStats_AvgRateRounding(t *testing.T) {
	t.Parallel()

	records := []models.WatchRecord{
		completedMovie("1", "A", 7, 0, date(2024, time.May, 1)),
		completedMovie("2", "B", 8, 0, date(2024, time.May, 1)),
		completedMovie("3", "C", 8, 0, date(2024, time.May, 1)),
	}

	s := ComputeMovieStats(records, time.UTC).Stats.(*models.MovieStats)
	if s.AvgRate != 7.67 {
		t.Errorf("avgRate = %v, want 7.67", s.AvgRate)
	}
}

func TestComputeMovieStats_NoGenres(t *testing.T) {
	t.Parallel()

	s := ComputeMovieStats([]models.WatchRecord{
		completedMovie("1", "A", 7, 0, date(2024, time.May, 1)),
	}, time.UTC).Stats.(*models.MovieStats)

	if s.FavoriteGenre != "" {
		t.Errorf("favoriteGenre = %q, want empty", s.FavoriteGenre)
	}
}

func TestComputeMovieStats_Properties(t *testing.T) {
	t.Parallel()

	var records []models.WatchRecord
	genres := []string{"Action", "Drama", "Comedy", "Sci-Fi"}
	for i := 0; i < 23; i++ {
		r := float64((i*7)%11) - 0.5*float64(i%2)
		if r < 0 {
			r = 0
		}
		records = append(records, completedMovie(
			string(rune('a'+i)), string(rune('A'+i)), r, 80+i,
			date(2024, time.March, 1+i), genres[i%len(genres)],
		))
	}

	res := ComputeMovieStats(records, time.UTC)
	s := res.Stats.(*models.MovieStats)

	if s.WatchCount != len(records) {
		t.Errorf("watchCount = %d, want %d", s.WatchCount, len(records))
	}
	if s.AvgRate < s.WorstRate || s.AvgRate > s.BestRate {
		t.Errorf("avgRate %v outside [%v, %v]", s.AvgRate, s.WorstRate, s.BestRate)
	}

	if len(res.Top5) != 5 || len(res.Top10) != 10 {
		t.Fatalf("expected 5/10 entries, got %d/%d", len(res.Top5), len(res.Top10))
	}
	for i := range res.Top5 {
		if res.Top5[i] != res.Top10[i] {
			t.Errorf("top5[%d] = %+v is not a prefix of top10 (%+v)", i, res.Top5[i], res.Top10[i])
		}
	}
	for i := 1; i < len(res.Top10); i++ {
		if res.Top10[i].Rating > res.Top10[i-1].Rating {
			t.Errorf("top10 not non-increasing at %d: %v > %v", i, res.Top10[i].Rating, res.Top10[i-1].Rating)
		}
	}
	if res.Top10[0].Rating != s.BestRate {
		t.Errorf("top10[0] rating = %v, want best %v", res.Top10[0].Rating, s.BestRate)
	}

	total := 0
	for _, d := range res.DailyActivity {
		if d.Count < 0 {
			t.Errorf("negative count for %s", d.Day)
		}
		total += d.Count
	}
	if total != len(records) {
		t.Errorf("daily activity sums to %d, want %d", total, len(records))
	}
}

func TestComputeMovieStats_JSONShape(t *testing.T) {
	t.Parallel()

	res := ComputeMovieStats([]models.WatchRecord{
		completedMovie("a", "A", 8, 120, date(2024, time.January, 10), "Action"),
	}, time.UTC)

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"stats", "dailyActivity", "top5", "top10"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in %s", key, data)
		}
	}

	var stats map[string]any
	if err := json.Unmarshal(decoded["stats"], &stats); err != nil {
		t.Fatalf("Unmarshal stats: %v", err)
	}
	for _, key := range []string{"watchCount", "avgRate", "bestRatedMovie", "bestRate", "worstRatedMovie", "worstRate", "favoriteGenre", "watchTime"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("expected stats key %q", key)
		}
	}
}
