// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/metrics"
)

// BusConfig holds configuration for the event bus.
type BusConfig struct {
	// CloseTimeout is how long to wait for handlers to finish when closing.
	CloseTimeout time.Duration

	// OutputChannelBuffer is the per-subscriber channel size.
	OutputChannelBuffer int64

	// Retry configuration
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64
}

// DefaultBusConfig returns production defaults for the Bus.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		CloseTimeout:         10 * time.Second,
		OutputChannelBuffer:  64,
		RetryMaxRetries:      3,
		RetryInitialInterval: 50 * time.Millisecond,
		RetryMaxInterval:     time.Second,
		RetryMultiplier:      2.0,
	}
}

// Bus is the in-process Pub/Sub used for watchlist events.
type Bus struct {
	pubsub *gochannel.GoChannel
	router *message.Router
	logger watermill.LoggerAdapter

	closeOnce sync.Once
	closeErr  error
}

// NewBus creates the Pub/Sub and a Router with recovery, correlation and
// retry middleware. Register consumers before calling Run.
func NewBus(cfg BusConfig, logger watermill.LoggerAdapter) (*Bus, error) {
	if logger == nil {
		logger = logging.NewWatermillLogger()
	}

	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            cfg.OutputChannelBuffer,
		BlockPublishUntilSubscriberAck: true,
	}, logger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	// Recoverer: Convert panics to errors
	router.AddMiddleware(middleware.Recoverer)

	// CorrelationID: carry the originating request ID into consumers
	router.AddMiddleware(middleware.CorrelationID)

	// Retry: Exponential backoff for transient failures
	retry := middleware.Retry{
		MaxRetries:      cfg.RetryMaxRetries,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
		Multiplier:      cfg.RetryMultiplier,
		Logger:          logger,
	}
	router.AddMiddleware(retry.Middleware)

	return &Bus{pubsub: pubsub, router: router, logger: logger}, nil
}

// AddConsumer registers a handler for topic. Handler errors are retried;
// a handler that keeps failing has its message redelivered, so handlers
// should acknowledge messages they can never process.
func (b *Bus) AddConsumer(name, topic string, handler message.NoPublishHandlerFunc) {
	b.router.AddConsumerHandler(name, topic, b.pubsub, handler)
}

// PublishWatchlistChanged publishes e on TopicWatchlistChanged. The
// request ID in ctx becomes the message correlation ID.
func (b *Bus) PublishWatchlistChanged(ctx context.Context, e WatchlistChanged) error {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	payload, err := e.Marshal()
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		middleware.SetCorrelationID(requestID, msg)
	}

	err = b.pubsub.Publish(TopicWatchlistChanged, msg)
	metrics.RecordEventPublished(TopicWatchlistChanged, err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", TopicWatchlistChanged, err)
	}
	return nil
}

// Run starts the router and blocks until ctx is cancelled or Close is called.
func (b *Bus) Run(ctx context.Context) error {
	return b.router.Run(ctx)
}

// Running returns a channel that closes when the router is running.
func (b *Bus) Running() chan struct{} {
	return b.router.Running()
}

// IsRunning reports whether the router is processing messages.
func (b *Bus) IsRunning() bool {
	return b.router.IsRunning()
}

// Close stops the router, waiting up to CloseTimeout for in-flight
// handlers, then closes the Pub/Sub. Later publishes fail.
func (b *Bus) Close() error {
	b.closeOnce.Do(func() {
		routerErr := b.router.Close()
		pubsubErr := b.pubsub.Close()
		if routerErr != nil {
			b.closeErr = fmt.Errorf("close router: %w", routerErr)
		} else if pubsubErr != nil {
			b.closeErr = fmt.Errorf("close pubsub: %w", pubsubErr)
		}
	})
	return b.closeErr
}
