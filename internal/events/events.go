// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package events

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// TopicWatchlistChanged receives one message per watchlist mutation.
const TopicWatchlistChanged = "watchlist.changed"

// Action names the kind of watchlist mutation.
type Action string

const (
	ActionAdded         Action = "added"
	ActionUpdated       Action = "updated"
	ActionSeasonUpdated Action = "season_updated"
	ActionRemoved       Action = "removed"
	ActionCleared       Action = "cleared"
)

// WatchlistChanged is the payload of TopicWatchlistChanged. RecordID is
// empty for ActionCleared.
type WatchlistChanged struct {
	UserID     string    `json:"userId"`
	RecordID   string    `json:"recordId,omitempty"`
	Action     Action    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Marshal encodes the event as a message payload.
func (e WatchlistChanged) Marshal() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal watchlist event: %w", err)
	}
	return data, nil
}

// UnmarshalWatchlistChanged decodes a message payload. Events without a
// user are rejected because no consumer can act on them.
func UnmarshalWatchlistChanged(payload []byte) (WatchlistChanged, error) {
	var e WatchlistChanged
	if err := json.Unmarshal(payload, &e); err != nil {
		return WatchlistChanged{}, fmt.Errorf("unmarshal watchlist event: %w", err)
	}
	if e.UserID == "" {
		return WatchlistChanged{}, fmt.Errorf("unmarshal watchlist event: %w", ErrMissingUser)
	}
	return e, nil
}
