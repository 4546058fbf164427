// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/watchwise/internal/models"
)

// runStoreContract exercises behaviour every Store driver must share.
// newStore must return an empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("insert assigns identity and timestamps", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec := movie("alice", 603, "The Matrix")
		if err := s.InsertRecord(ctx, &rec); err != nil {
			t.Fatalf("InsertRecord() error = %v", err)
		}
		if rec.ID == "" {
			t.Error("expected ID to be assigned")
		}
		if rec.CreatedAt.IsZero() || !rec.CreatedAt.Equal(rec.UpdatedAt) {
			t.Errorf("CreatedAt = %v, UpdatedAt = %v, want equal non-zero", rec.CreatedAt, rec.UpdatedAt)
		}

		got, err := s.GetRecord(ctx, "alice", rec.ID)
		if err != nil {
			t.Fatalf("GetRecord() error = %v", err)
		}
		if got.Title != "The Matrix" || got.TMDBID != 603 || got.ContentType != models.ContentTypeMovie {
			t.Errorf("GetRecord() = %+v", got)
		}
		if len(got.Genre) != 2 || got.Genre[0] != "Action" {
			t.Errorf("Genre = %v, want [Action Science Fiction]", got.Genre)
		}
	})

	t.Run("duplicate title per user", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		first := movie("alice", 603, "The Matrix")
		if err := s.InsertRecord(ctx, &first); err != nil {
			t.Fatalf("InsertRecord() error = %v", err)
		}

		again := movie("alice", 603, "The Matrix")
		if err := s.InsertRecord(ctx, &again); !errors.Is(err, ErrDuplicate) {
			t.Errorf("second InsertRecord() error = %v, want ErrDuplicate", err)
		}

		otherUser := movie("bob", 603, "The Matrix")
		if err := s.InsertRecord(ctx, &otherUser); err != nil {
			t.Errorf("InsertRecord() for another user error = %v", err)
		}

		sameIDAsTV := show("alice", 603, "Some Show")
		if err := s.InsertRecord(ctx, &sameIDAsTV); err != nil {
			t.Errorf("InsertRecord() for tv with same tmdbId error = %v", err)
		}
	})

	t.Run("records are scoped to their owner", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec := movie("alice", 1, "Alien")
		mustInsert(t, s, &rec)

		if _, err := s.GetRecord(ctx, "bob", rec.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetRecord() by other user error = %v, want ErrNotFound", err)
		}
		if err := s.DeleteRecord(ctx, "bob", rec.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteRecord() by other user error = %v, want ErrNotFound", err)
		}

		stolen := rec
		stolen.UserID = "bob"
		if err := s.UpdateRecord(ctx, &stolen); !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateRecord() by other user error = %v, want ErrNotFound", err)
		}
	})

	t.Run("update keeps identity fields", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec := movie("alice", 1, "Alien")
		mustInsert(t, s, &rec)
		created := rec.CreatedAt

		done := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
		rec.Status = models.StatusCompleted
		rec.CompletedDate = &done
		rec.Rating = 9
		rec.ContentType = models.ContentTypeTV
		rec.TMDBID = 999
		if err := s.UpdateRecord(ctx, &rec); err != nil {
			t.Fatalf("UpdateRecord() error = %v", err)
		}

		got, err := s.GetRecord(ctx, "alice", rec.ID)
		if err != nil {
			t.Fatalf("GetRecord() error = %v", err)
		}
		if got.ContentType != models.ContentTypeMovie || got.TMDBID != 1 {
			t.Errorf("identity changed: contentType=%s tmdbId=%d", got.ContentType, got.TMDBID)
		}
		if !got.CreatedAt.Equal(created) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
		}
		if got.Status != models.StatusCompleted || got.Rating != 9 {
			t.Errorf("status=%s rating=%v, want completed/9", got.Status, got.Rating)
		}
		if got.CompletedDate == nil || !got.CompletedDate.Equal(done) {
			t.Errorf("CompletedDate = %v, want %v", got.CompletedDate, done)
		}
	})

	t.Run("missing records", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		if _, err := s.GetRecord(ctx, "alice", "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetRecord() error = %v, want ErrNotFound", err)
		}
		if err := s.DeleteRecord(ctx, "alice", "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteRecord() error = %v, want ErrNotFound", err)
		}
		ghost := movie("alice", 1, "Ghost")
		ghost.ID = "nope"
		if err := s.UpdateRecord(ctx, &ghost); !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateRecord() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete frees the title for re-adding", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec := movie("alice", 1, "Alien")
		mustInsert(t, s, &rec)
		if err := s.DeleteRecord(ctx, "alice", rec.ID); err != nil {
			t.Fatalf("DeleteRecord() error = %v", err)
		}

		again := movie("alice", 1, "Alien")
		if err := s.InsertRecord(ctx, &again); err != nil {
			t.Errorf("InsertRecord() after delete error = %v", err)
		}
	})

	t.Run("find filters and keeps creation order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		march := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
		january := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

		a := completed(movie("alice", 1, "A"), january)
		b := movie("alice", 2, "B")
		c := completed(movie("alice", 3, "C"), march)
		d := show("alice", 4, "D")
		e := completed(movie("bob", 5, "E"), march)
		for _, r := range []*models.WatchRecord{&a, &b, &c, &d, &e} {
			mustInsert(t, s, r)
		}

		tests := []struct {
			name  string
			query models.RecordQuery
			want  []string
		}{
			{"all of alice", models.RecordQuery{UserID: "alice"}, []string{"A", "B", "C", "D"}},
			{"movies", models.RecordQuery{UserID: "alice", ContentType: models.ContentTypeMovie}, []string{"A", "B", "C"}},
			{"tv", models.RecordQuery{UserID: "alice", ContentType: models.ContentTypeTV}, []string{"D"}},
			{"completed", models.RecordQuery{UserID: "alice", Status: models.StatusCompleted}, []string{"A", "C"}},
			{"completed since february", models.RecordQuery{
				UserID:         "alice",
				Status:         models.StatusCompleted,
				CompletedSince: timePtr(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
			}, []string{"C"}},
			{"closed lower bound", models.RecordQuery{UserID: "alice", CompletedSince: &march}, []string{"C"}},
			{"unknown user", models.RecordQuery{UserID: "carol"}, nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := s.FindRecords(ctx, tt.query)
				if err != nil {
					t.Fatalf("FindRecords() error = %v", err)
				}
				if got == nil {
					t.Fatal("FindRecords() = nil, want empty slice")
				}
				if titles := titlesOf(got); !equalStrings(titles, tt.want) {
					t.Errorf("FindRecords() titles = %v, want %v", titles, tt.want)
				}
			})
		}
	})

	t.Run("seasons round trip", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		done := time.Date(2024, 3, 1, 21, 0, 0, 0, time.UTC)
		nine := 9.0
		rec := show("alice", 1396, "Breaking Bad")
		rec.Seasons = []models.SeasonRecord{{
			SeasonNumber:  1,
			Status:        models.StatusCompleted,
			CompletedDate: &done,
			EpisodeCount:  7,
			Duration:      350,
			Episodes: []models.EpisodeRecord{
				{EpisodeNumber: 1, Title: "Pilot", Rating: &nine},
				{EpisodeNumber: 2},
			},
		}}
		mustInsert(t, s, &rec)

		got, err := s.GetRecord(ctx, "alice", rec.ID)
		if err != nil {
			t.Fatalf("GetRecord() error = %v", err)
		}
		season := got.Season(1)
		if season == nil {
			t.Fatal("season 1 missing")
		}
		if !season.IsCompleted() || season.Duration != 350 || len(season.Episodes) != 2 {
			t.Errorf("season = %+v", season)
		}
		if season.Episodes[0].Rating == nil || *season.Episodes[0].Rating != 9 {
			t.Errorf("episode 1 rating = %v, want 9", season.Episodes[0].Rating)
		}
		if season.Episodes[1].Rating != nil {
			t.Errorf("episode 2 rating = %v, want nil", *season.Episodes[1].Rating)
		}
	})

	t.Run("delete all", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for i := int64(1); i <= 3; i++ {
			r := movie("alice", i, "Movie")
			mustInsert(t, s, &r)
		}
		keep := movie("bob", 1, "Movie")
		mustInsert(t, s, &keep)

		n, err := s.DeleteAllRecords(ctx, "alice")
		if err != nil {
			t.Fatalf("DeleteAllRecords() error = %v", err)
		}
		if n != 3 {
			t.Errorf("DeleteAllRecords() = %d, want 3", n)
		}

		left, _ := s.FindRecords(ctx, models.RecordQuery{UserID: "alice"})
		if len(left) != 0 {
			t.Errorf("alice has %d records left, want 0", len(left))
		}
		bobs, _ := s.FindRecords(ctx, models.RecordQuery{UserID: "bob"})
		if len(bobs) != 1 {
			t.Errorf("bob has %d records, want 1", len(bobs))
		}

		readd := movie("alice", 1, "Movie")
		if err := s.InsertRecord(ctx, &readd); err != nil {
			t.Errorf("InsertRecord() after DeleteAllRecords() error = %v", err)
		}

		if n, err := s.DeleteAllRecords(ctx, "nobody"); err != nil || n != 0 {
			t.Errorf("DeleteAllRecords(nobody) = %d, %v, want 0, nil", n, err)
		}
	})

	t.Run("users", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		u := models.User{Username: "alice", PasswordHash: "$2a$04$hash"}
		if err := s.CreateUser(ctx, &u); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if u.ID == "" || u.CreatedAt.IsZero() {
			t.Errorf("CreateUser() did not assign identity: %+v", u)
		}

		dup := models.User{Username: "alice", PasswordHash: "x"}
		if err := s.CreateUser(ctx, &dup); !errors.Is(err, ErrDuplicate) {
			t.Errorf("CreateUser() duplicate error = %v, want ErrDuplicate", err)
		}

		byName, err := s.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername() error = %v", err)
		}
		if byName.ID != u.ID || byName.PasswordHash != "$2a$04$hash" {
			t.Errorf("GetUserByUsername() = %+v", byName)
		}

		byID, err := s.GetUserByID(ctx, u.ID)
		if err != nil {
			t.Fatalf("GetUserByID() error = %v", err)
		}
		if byID.Username != "alice" {
			t.Errorf("GetUserByID().Username = %q, want alice", byID.Username)
		}

		if _, err := s.GetUserByUsername(ctx, "bob"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetUserByUsername(bob) error = %v, want ErrNotFound", err)
		}
		if _, err := s.GetUserByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetUserByID(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("concurrent duplicate inserts", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		const workers = 8
		var (
			wg       sync.WaitGroup
			inserted atomic.Int32
			dups     atomic.Int32
			users    atomic.Int32
			userDups atomic.Int32
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				rec := movie("alice", 603, "The Matrix")
				switch err := s.InsertRecord(ctx, &rec); {
				case err == nil:
					inserted.Add(1)
				case errors.Is(err, ErrDuplicate):
					dups.Add(1)
				default:
					t.Errorf("InsertRecord() error = %v", err)
				}

				u := &models.User{Username: "alice", PasswordHash: "$2a$04$hash"}
				switch err := s.CreateUser(ctx, u); {
				case err == nil:
					users.Add(1)
				case errors.Is(err, ErrDuplicate):
					userDups.Add(1)
				default:
					t.Errorf("CreateUser() error = %v", err)
				}
			}()
		}
		wg.Wait()

		if inserted.Load() != 1 || dups.Load() != workers-1 {
			t.Errorf("inserts = %d, duplicates = %d, want 1 and %d", inserted.Load(), dups.Load(), workers-1)
		}
		if users.Load() != 1 || userDups.Load() != workers-1 {
			t.Errorf("users = %d, duplicates = %d, want 1 and %d", users.Load(), userDups.Load(), workers-1)
		}

		records, err := s.FindRecords(ctx, models.RecordQuery{UserID: "alice"})
		if err != nil {
			t.Fatalf("FindRecords() error = %v", err)
		}
		if len(records) != 1 {
			t.Errorf("len(FindRecords()) = %d, want 1", len(records))
		}
	})

	t.Run("ping", func(t *testing.T) {
		s := newStore(t)
		if err := s.Ping(context.Background()); err != nil {
			t.Errorf("Ping() error = %v", err)
		}
	})
}

func movie(user string, tmdbID int64, title string) models.WatchRecord {
	return models.WatchRecord{
		UserID:      user,
		TMDBID:      tmdbID,
		ContentType: models.ContentTypeMovie,
		Title:       title,
		Genre:       []string{"Action", "Science Fiction"},
		Duration:    120,
		Status:      models.StatusPlanned,
	}
}

func show(user string, tmdbID int64, title string) models.WatchRecord {
	return models.WatchRecord{
		UserID:      user,
		TMDBID:      tmdbID,
		ContentType: models.ContentTypeTV,
		Title:       title,
		Genre:       []string{"Drama"},
		Status:      models.StatusWatching,
	}
}

func completed(r models.WatchRecord, at time.Time) models.WatchRecord {
	r.Status = models.StatusCompleted
	r.CompletedDate = &at
	return r
}

func mustInsert(t *testing.T, s Store, r *models.WatchRecord) {
	t.Helper()
	if err := s.InsertRecord(context.Background(), r); err != nil {
		t.Fatalf("InsertRecord(%s) error = %v", r.Title, err)
	}
}

func titlesOf(records []models.WatchRecord) []string {
	var titles []string
	for _, r := range records {
		titles = append(titles, r.Title)
	}
	return titles
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func timePtr(t time.Time) *time.Time { return &t }
