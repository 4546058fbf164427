// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = testSecret
	return cfg
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults with secret", func(*Config) {}, ""},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "PORT"},
		{"short secret", func(c *Config) { c.Security.JWTSecret = "short" }, "JWT_SECRET"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "sqlite" }, "DB_DRIVER"},
		{"mongo without uri", func(c *Config) { c.Database.Driver = DriverMongo }, "MONGODB_URI is required"},
		{"mongo bad scheme", func(c *Config) {
			c.Database.Driver = DriverMongo
			c.Database.MongoURI = "http://localhost"
		}, "mongodb://"},
		{"mongo ok", func(c *Config) {
			c.Database.Driver = DriverMongo
			c.Database.MongoURI = "mongodb+srv://cluster.example.com"
		}, ""},
		{"badger without path", func(c *Config) { c.Database.BadgerPath = "" }, "BADGER_PATH"},
		{"bcrypt cost", func(c *Config) { c.Security.BcryptCost = 40 }, "BCRYPT_COST"},
		{"rate limit window", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"production with origins", func(c *Config) {
			c.Server.Environment = "prod"
			c.Security.CORSOrigins = []string{"https://watchwise.example.com"}
		}, ""},
		{"negative cache ttl", func(c *Config) { c.Stats.CacheTTL = -time.Second }, "STATS_CACHE_TTL"},
		{"bad timezone", func(c *Config) { c.Stats.Timezone = "Mars/Olympus" }, "STATS_TIMEZONE"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestStatsLocation(t *testing.T) {
	t.Parallel()

	loc, err := StatsConfig{Timezone: "Local"}.Location()
	if err != nil || loc != time.Local {
		t.Errorf("Local should resolve to time.Local, got %v, %v", loc, err)
	}
	loc, err = StatsConfig{Timezone: "UTC"}.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("UTC should resolve, got %v, %v", loc, err)
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 5000}
	if s.Addr() != "127.0.0.1:5000" {
		t.Errorf("Addr() = %q", s.Addr())
	}
}
