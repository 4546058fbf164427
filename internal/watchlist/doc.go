// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package watchlist implements the lifecycle of watch records.

Service enforces the rules the store does not know about:

  - a title can be on a user's watchlist once per content type
  - completedDate is stamped when a record or season becomes completed,
    kept while it stays completed, and cleared when it leaves that state
  - seasons exist only on TV records; episode ratings are set or cleared
    per episode number

Every successful mutation publishes an events.WatchlistChanged event. A
failed publish is logged but does not undo the mutation.
*/
package watchlist
