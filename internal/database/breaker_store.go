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

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/metrics"
	"github.com/tomtom215/watchwise/internal/models"
)

// ErrStoreUnavailable is returned while the breaker rejects reads.
var ErrStoreUnavailable = errors.New("store unavailable")

// BreakerSettings configures a BreakerStore.
type BreakerSettings struct {
	Name             string
	MaxRequests      uint32        // probes allowed while half-open
	Interval         time.Duration // closed-state count reset period
	Timeout          time.Duration // open duration before half-open
	FailureThreshold uint32        // consecutive failures that open the circuit
}

// DefaultBreakerSettings opens after 5 consecutive failures and probes again
// after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:             "watch-record-store",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerStore guards the read path of a Store with a circuit breaker.
// Writes pass straight through so they are never dropped by an open circuit.
type BreakerStore struct {
	Store
	cb   *gobreaker.CircuitBreaker[interface{}]
	name string
}

// NewBreakerStore wraps next.
func NewBreakerStore(next Store, cfg BreakerSettings) *BreakerStore {
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Warn().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerStore{Store: next, cb: cb, name: cfg.Name}
}

// isBreakerSuccess treats domain answers and caller cancellation as healthy
// backend responses.
func isBreakerSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, context.Canceled)
}

// State returns the current breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	case !isBreakerSuccess(err):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	}
	return result, err
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// FindRecords implements RecordStore.
func (b *BreakerStore) FindRecords(ctx context.Context, q models.RecordQuery) ([]models.WatchRecord, error) {
	return castResult[[]models.WatchRecord](b.execute(func() (interface{}, error) {
		return b.Store.FindRecords(ctx, q)
	}))
}

// GetRecord implements RecordStore.
func (b *BreakerStore) GetRecord(ctx context.Context, userID, id string) (*models.WatchRecord, error) {
	return castResult[*models.WatchRecord](b.execute(func() (interface{}, error) {
		return b.Store.GetRecord(ctx, userID, id)
	}))
}

// GetUserByUsername implements UserStore.
func (b *BreakerStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return castResult[*models.User](b.execute(func() (interface{}, error) {
		return b.Store.GetUserByUsername(ctx, username)
	}))
}

// GetUserByID implements UserStore.
func (b *BreakerStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return castResult[*models.User](b.execute(func() (interface{}, error) {
		return b.Store.GetUserByID(ctx, id)
	}))
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
