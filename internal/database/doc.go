// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package database persists watch records and user accounts.

Two drivers implement Store:

  - BadgerStore: embedded BadgerDB, the default. Values are JSON documents
    under per-user key prefixes; record IDs are UUIDv7 so prefix iteration
    returns records in creation order.
  - MongoStore: MongoDB via the official driver, selected with
    database.driver: mongo. Records live in the "watchlist" collection and
    accounts in "users".

BreakerStore wraps either driver with a gobreaker circuit breaker so a
failing backend is rejected fast instead of stalling every request.

Ordering:

FindRecords returns records in creation order on every driver. Callers that
want newest first reverse the slice.

Uniqueness:

(user, contentType, tmdbId) is unique per user and usernames are unique
across accounts. Violations return ErrDuplicate. Missing or foreign
records return ErrNotFound; a record owned by another user is
indistinguishable from one that does not exist.
*/
package database
