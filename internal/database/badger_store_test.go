// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package database

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/watchwise/internal/config"
	"github.com/tomtom215/watchwise/internal/models"
)

// newTestBadgerStore opens an in-memory BadgerDB closed at test cleanup.
func newTestBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("Failed to open BadgerDB: %v", err)
	}
	s := NewBadgerStore(db)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBadgerStore_Contract(t *testing.T) {
	t.Parallel()
	runStoreContract(t, func(t *testing.T) Store { return newTestBadgerStore(t) })
}

func TestBadgerStore_Driver(t *testing.T) {
	t.Parallel()
	if got := newTestBadgerStore(t).Driver(); got != config.DriverBadger {
		t.Errorf("Driver() = %q, want %q", got, config.DriverBadger)
	}
}

func TestBadgerStore_OnDisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	rec := movie("alice", 1, "Alien")
	mustInsert(t, s, &rec)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetRecord(ctx, "alice", rec.ID)
	if err != nil {
		t.Fatalf("GetRecord() after reopen error = %v", err)
	}
	if got.Title != "Alien" {
		t.Errorf("Title = %q, want Alien", got.Title)
	}
}

func TestBadgerStore_Closed(t *testing.T) {
	t.Parallel()
	s := newTestBadgerStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := s.Ping(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Ping() after close error = %v, want ErrClosed", err)
	}
	if _, err := s.FindRecords(context.Background(), models.RecordQuery{UserID: "alice"}); !errors.Is(err, ErrClosed) {
		t.Errorf("FindRecords() after close error = %v, want ErrClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestBadgerStore_CanceledContext(t *testing.T) {
	t.Parallel()
	s := newTestBadgerStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.FindRecords(ctx, models.RecordQuery{UserID: "alice"}); !errors.Is(err, context.Canceled) {
		t.Errorf("FindRecords() error = %v, want context.Canceled", err)
	}
	rec := movie("alice", 1, "Alien")
	if err := s.InsertRecord(ctx, &rec); !errors.Is(err, context.Canceled) {
		t.Errorf("InsertRecord() error = %v, want context.Canceled", err)
	}
}

func TestBadgerStore_PasswordHashPersisted(t *testing.T) {
	t.Parallel()
	s := newTestBadgerStore(t)
	ctx := context.Background()

	u := models.User{Username: "alice", PasswordHash: "$2a$04$secret"}
	if err := s.CreateUser(ctx, &u); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	got, err := s.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if got.PasswordHash != "$2a$04$secret" {
		t.Errorf("PasswordHash = %q, want stored hash", got.PasswordHash)
	}
}

func TestBadgerStore_ConcurrentInserts(t *testing.T) {
	t.Parallel()
	s := newTestBadgerStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := int64(1); i <= 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			rec := movie("alice", id, "Movie")
			if err := s.InsertRecord(ctx, &rec); err != nil && !errors.Is(err, badger.ErrConflict) {
				t.Errorf("InsertRecord(%d) error = %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.FindRecords(ctx, models.RecordQuery{UserID: "alice"})
	if err != nil {
		t.Fatalf("FindRecords() error = %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].ID < got[i-1].ID {
			t.Errorf("records not in id order at %d: %s < %s", i, got[i].ID, got[i-1].ID)
		}
	}
}
