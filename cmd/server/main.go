// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/watchwise/internal/api"
	"github.com/tomtom215/watchwise/internal/auth"
	"github.com/tomtom215/watchwise/internal/cache"
	"github.com/tomtom215/watchwise/internal/config"
	"github.com/tomtom215/watchwise/internal/database"
	"github.com/tomtom215/watchwise/internal/events"
	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/stats"
	"github.com/tomtom215/watchwise/internal/supervisor"
	"github.com/tomtom215/watchwise/internal/supervisor/services"
	"github.com/tomtom215/watchwise/internal/watchlist"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the components and blocks until ctx is canceled or the
// supervisor tree stops. Resources are released before it returns.
func run(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("environment", cfg.Server.Environment).
		Msg("Starting WatchWise")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Strs("origins", cfg.Security.CORSOrigins).Msg("CORS allows any origin in production")
	}

	loc, err := cfg.Stats.Location()
	if err != nil {
		return fmt.Errorf("load stats timezone: %w", err)
	}

	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Str("driver", store.Driver()).Msg("Database initialized")

	statsCache := cache.New(cfg.Stats.CacheTTL)
	defer statsCache.Close()

	bus, err := events.NewBus(events.DefaultBusConfig(), logging.NewWatermillLogger())
	if err != nil {
		return fmt.Errorf("create event bus: %w", err)
	}
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()
	events.NewCacheInvalidator(statsCache).Register(bus)

	engine := stats.NewEngine(store,
		stats.WithCache(statsCache, cfg.Stats.CacheTTL),
		stats.WithLocation(loc),
	)
	wl := watchlist.NewService(store, bus)

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return fmt.Errorf("create JWT manager: %w", err)
	}
	authSvc := auth.NewService(store, jwtManager, cfg.Security.BcryptCost)
	loginLimiter := auth.NewLoginLimiter(cfg.Security.LoginRatePerMinute, cfg.Security.LoginBurst)
	defer loginLimiter.Stop()

	handler := api.NewHandler(engine, wl, authSvc, store, version)
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager), loginLimiter, api.ChiConfigFromSecurity(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(services.NewEventRouterService(bus))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout,
		services.WithStartAfter(bus.Running())))

	logging.Info().Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	unstopped, reportErr := tree.UnstoppedServiceReport()
	if reportErr == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	return nil
}
