// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package events

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/metrics"
	"github.com/tomtom215/watchwise/internal/stats"
)

// CacheInvalidatorName is the router handler name of the invalidator.
const CacheInvalidatorName = "stats-cache-invalidator"

// PrefixDeleter removes cache entries by key prefix.
type PrefixDeleter interface {
	DeletePrefix(prefix string) int
}

// CacheInvalidator drops every cached stats result of the user named in a
// WatchlistChanged event.
type CacheInvalidator struct {
	cache PrefixDeleter
}

// NewCacheInvalidator creates an invalidator for c.
func NewCacheInvalidator(c PrefixDeleter) *CacheInvalidator {
	return &CacheInvalidator{cache: c}
}

// Register subscribes the invalidator to TopicWatchlistChanged on bus.
func (ci *CacheInvalidator) Register(bus *Bus) {
	bus.AddConsumer(CacheInvalidatorName, TopicWatchlistChanged, ci.Handle)
}

// Handle processes one message. Undecodable messages are logged and
// acknowledged; redelivering them could never succeed.
func (ci *CacheInvalidator) Handle(msg *message.Message) error {
	e, err := UnmarshalWatchlistChanged(msg.Payload)
	if err != nil {
		logging.Warn().
			Err(err).
			Str("message_uuid", msg.UUID).
			Msg("Dropping undecodable watchlist event")
		metrics.RecordEventHandled(CacheInvalidatorName, err)
		return nil
	}

	removed := ci.cache.DeletePrefix(stats.CacheKeyPrefix(e.UserID))
	metrics.RecordEventHandled(CacheInvalidatorName, nil)

	logging.Debug().
		Str("user_id", e.UserID).
		Str("action", string(e.Action)).
		Str("correlation_id", middleware.MessageCorrelationID(msg)).
		Int("removed", removed).
		Msg("Invalidated cached stats")
	return nil
}
