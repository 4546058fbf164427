// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService implements suture.Service. It fails the first failFor
// calls to Serve and then runs until its context is canceled.
type mockService struct {
	name       string
	failFor    int32
	startCount atomic.Int32
	running    chan struct{}
}

func newMockService(name string, failFor int32) *mockService {
	return &mockService{name: name, failFor: failFor, running: make(chan struct{}, 1)}
}

func (m *mockService) Serve(ctx context.Context) error {
	if n := m.startCount.Add(1); n <= m.failFor {
		return errors.New("simulated failure")
	}
	select {
	case m.running <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}
