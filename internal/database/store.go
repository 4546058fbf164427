// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/watchwise/internal/config"
	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/metrics"
	"github.com/tomtom215/watchwise/internal/models"
)

// RecordStore persists watch records.
type RecordStore interface {
	// InsertRecord assigns ID, CreatedAt and UpdatedAt and stores r.
	InsertRecord(ctx context.Context, r *models.WatchRecord) error
	GetRecord(ctx context.Context, userID, id string) (*models.WatchRecord, error)
	// UpdateRecord replaces a record, keeping CreatedAt and refreshing UpdatedAt.
	UpdateRecord(ctx context.Context, r *models.WatchRecord) error
	DeleteRecord(ctx context.Context, userID, id string) error
	// DeleteAllRecords removes every record of a user and returns the count.
	DeleteAllRecords(ctx context.Context, userID string) (int, error)
	// FindRecords returns the records matching q in creation order.
	FindRecords(ctx context.Context, q models.RecordQuery) ([]models.WatchRecord, error)
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store is the full persistence surface used by the server.
type Store interface {
	RecordStore
	UserStore
	Ping(ctx context.Context) error
	Driver() string
	Close() error
}

// Open connects the driver selected by cfg.Driver. When cfg.BreakerEnabled
// is set the store is wrapped in a BreakerStore.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Driver {
	case config.DriverBadger, "":
		store, err = OpenBadger(cfg.BadgerPath)
	case config.DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		store, err = OpenMongo(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("driver", store.Driver()).
		Bool("breaker", cfg.BreakerEnabled).
		Msg("Watch record store opened")

	if cfg.BreakerEnabled {
		return NewBreakerStore(store, DefaultBreakerSettings()), nil
	}
	return store, nil
}

// storeNow returns the createdAt/updatedAt stamp. Stored times are UTC and
// truncated to milliseconds so both drivers round-trip them identically.
func storeNow(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}

// observeOp records a store call. Not-found and duplicate results are
// answers, not failures, so they do not count as errors.
func observeOp(driver, op string, start time.Time, err *error) {
	var opErr error
	if err != nil && *err != nil && !errors.Is(*err, ErrNotFound) && !errors.Is(*err, ErrDuplicate) {
		opErr = *err
	}
	metrics.RecordStoreOperation(driver, op, time.Since(start), opErr)
}
