// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/watchwise/internal/config"
	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	recordKeyPrefix   = "record:"      // record:<user>:<id> -> WatchRecord JSON
	titleKeyPrefix    = "record_tmdb:" // record_tmdb:<user>:<contentType>:<tmdbId> -> id
	userKeyPrefix     = "user:"        // user:<id> -> storedUser JSON
	usernameKeyPrefix = "username:"    // username:<username> -> id
)

// BadgerStore implements Store on an embedded BadgerDB.
type BadgerStore struct {
	db  *badger.DB
	now func() time.Time
}

// OpenBadger opens (or creates) a BadgerDB at path. An empty path opens an
// in-memory database.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(newBadgerLogger())
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return NewBadgerStore(db), nil
}

// NewBadgerStore wraps an open BadgerDB. The store takes ownership of db.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db, now: time.Now}
}

func recordKey(userID, id string) []byte {
	return []byte(recordKeyPrefix + userID + ":" + id)
}

func userRecordPrefix(userID string) []byte {
	return []byte(recordKeyPrefix + userID + ":")
}

func titleKey(userID string, ct models.ContentType, tmdbID int64) []byte {
	return []byte(titleKeyPrefix + userID + ":" + string(ct) + ":" + strconv.FormatInt(tmdbID, 10))
}

// Driver implements Store.
func (s *BadgerStore) Driver() string { return config.DriverBadger }

// InsertRecord implements RecordStore.
func (s *BadgerStore) InsertRecord(ctx context.Context, r *models.WatchRecord) (err error) {
	defer s.observe("insert_record", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate record id: %w", err)
	}

	rec := *r
	rec.ID = id.String()
	rec.CreatedAt = storeNow(s.now)
	rec.UpdatedAt = rec.CreatedAt

	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	err = s.update(func(txn *badger.Txn) error {
		tkey := titleKey(rec.UserID, rec.ContentType, rec.TMDBID)
		if _, err := txn.Get(tkey); err == nil {
			return ErrDuplicate
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check title index: %w", err)
		}

		if err := txn.Set(recordKey(rec.UserID, rec.ID), data); err != nil {
			return fmt.Errorf("set record: %w", err)
		}
		if err := txn.Set(tkey, []byte(rec.ID)); err != nil {
			return fmt.Errorf("set title index: %w", err)
		}
		return nil
	})
	if err != nil {
		return s.mapTxnErr(err)
	}

	*r = rec
	return nil
}

// GetRecord implements RecordStore.
func (s *BadgerStore) GetRecord(ctx context.Context, userID, id string) (rec *models.WatchRecord, err error) {
	defer s.observe("get_record", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		var txErr error
		rec, txErr = getRecordTxn(txn, userID, id)
		return txErr
	})
	if err != nil {
		return nil, s.mapTxnErr(err)
	}
	return rec, nil
}

func getRecordTxn(txn *badger.Txn, userID, id string) (*models.WatchRecord, error) {
	item, err := txn.Get(recordKey(userID, id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	var rec models.WatchRecord
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	}); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", id, err)
	}
	return &rec, nil
}

// UpdateRecord implements RecordStore. ContentType and TMDBID are taken from
// the stored record, so the title index never changes.
func (s *BadgerStore) UpdateRecord(ctx context.Context, r *models.WatchRecord) (err error) {
	defer s.observe("update_record", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}

	var updated models.WatchRecord
	err = s.update(func(txn *badger.Txn) error {
		existing, err := getRecordTxn(txn, r.UserID, r.ID)
		if err != nil {
			return err
		}

		updated = *r
		updated.ContentType = existing.ContentType
		updated.TMDBID = existing.TMDBID
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = storeNow(s.now)

		data, err := json.Marshal(&updated)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		return txn.Set(recordKey(updated.UserID, updated.ID), data)
	})
	if err != nil {
		return s.mapTxnErr(err)
	}

	*r = updated
	return nil
}

// DeleteRecord implements RecordStore.
func (s *BadgerStore) DeleteRecord(ctx context.Context, userID, id string) (err error) {
	defer s.observe("delete_record", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}

	err = s.update(func(txn *badger.Txn) error {
		existing, err := getRecordTxn(txn, userID, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(recordKey(userID, id)); err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		if err := txn.Delete(titleKey(userID, existing.ContentType, existing.TMDBID)); err != nil {
			return fmt.Errorf("delete title index: %w", err)
		}
		return nil
	})
	return s.mapTxnErr(err)
}

// DeleteAllRecords implements RecordStore. Keys are collected in a read
// transaction and removed with a WriteBatch, which splits large deletions
// across transactions.
func (s *BadgerStore) DeleteAllRecords(ctx context.Context, userID string) (n int, err error) {
	defer s.observe("delete_all_records", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var keys [][]byte
	err = s.db.View(func(txn *badger.Txn) error {
		recordKeys := collectKeys(txn, userRecordPrefix(userID))
		n = len(recordKeys)
		keys = append(recordKeys, collectKeys(txn, []byte(titleKeyPrefix+userID+":"))...)
		return nil
	})
	if err != nil {
		return 0, s.mapTxnErr(fmt.Errorf("list user records: %w", err))
	}
	if len(keys) == 0 {
		return 0, nil
	}

	wb := s.db.NewWriteBatch()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			wb.Cancel()
			return 0, s.mapTxnErr(fmt.Errorf("delete records: %w", err))
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, s.mapTxnErr(fmt.Errorf("flush record deletes: %w", err))
	}
	return n, nil
}

func collectKeys(txn *badger.Txn, prefix []byte) [][]byte {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}

// FindRecords implements RecordStore. Records of one user share a key
// prefix, so a query with UserID scans only that user's records.
func (s *BadgerStore) FindRecords(ctx context.Context, q models.RecordQuery) (out []models.WatchRecord, err error) {
	defer s.observe("find_records", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := []byte(recordKeyPrefix)
	if q.UserID != "" {
		prefix = userRecordPrefix(q.UserID)
	}

	out = []models.WatchRecord{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var rec models.WatchRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return fmt.Errorf("decode record %s: %w", it.Item().Key(), err)
			}
			if q.Matches(&rec) {
				out = append(out, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.mapTxnErr(err)
	}
	return out, nil
}

// Ping implements Store.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

// mapTxnErr translates badger's closed-DB error to ErrClosed.
// maxConflictRetries bounds how often update reruns a transaction that lost
// a write conflict.
const maxConflictRetries = 3

// update runs fn in a read-write transaction. A transaction that conflicts
// with a concurrent commit is rerun, so its reads see the winner's writes.
func (s *BadgerStore) update(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func (s *BadgerStore) mapTxnErr(err error) error {
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrClosed
	}
	return err
}

func (s *BadgerStore) observe(op string, start time.Time, err *error) {
	observeOp(config.DriverBadger, op, start, err)
}

// badgerLogger routes badger's internal logging through zerolog. Badger is
// chatty at info level, so info is demoted to debug.
type badgerLogger struct{}

func newBadgerLogger() badger.Logger { return badgerLogger{} }

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logging.Error().Str("component", "badger").Msgf(format, args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logging.Warn().Str("component", "badger").Msgf(format, args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logging.Debug().Str("component", "badger").Msgf(format, args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logging.Debug().Str("component", "badger").Msgf(format, args...)
}
