// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package services

import (
	"context"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/watchwise/internal/logging"
)

// EventRouter matches the run lifecycle of events.Bus.
type EventRouter interface {
	Run(ctx context.Context) error
}

// EventRouterService runs the event router as a supervised service.
type EventRouterService struct {
	router EventRouter
	name   string
}

// NewEventRouterService creates a new event router service wrapper.
func NewEventRouterService(router EventRouter) *EventRouterService {
	return &EventRouterService{router: router, name: "event-router"}
}

// Serve implements suture.Service. It blocks until ctx is canceled.
func (s *EventRouterService) Serve(ctx context.Context) error {
	err := s.router.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Stopped on its own: a closed router cannot run again.
	if err != nil {
		logging.Error().Err(err).Msg("Event router stopped unexpectedly")
	} else {
		logging.Warn().Msg("Event router stopped before shutdown")
	}
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer for suture's log messages.
func (s *EventRouterService) String() string {
	return s.name
}
