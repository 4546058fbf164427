// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Stats    StatsConfig    `koanf:"stats"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development" or "production"
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Supported database drivers.
const (
	DriverBadger = "badger"
	DriverMongo  = "mongo"
)

// DatabaseConfig selects and configures the watch record store.
type DatabaseConfig struct {
	Driver         string        `koanf:"driver"`
	BadgerPath     string        `koanf:"badger_path"`
	MongoURI       string        `koanf:"mongo_uri"`
	MongoDatabase  string        `koanf:"mongo_database"`
	Timeout        time.Duration `koanf:"timeout"`
	BreakerEnabled bool          `koanf:"breaker_enabled"`
}

// SecurityConfig holds authentication and request limiting settings
type SecurityConfig struct {
	JWTSecret          string        `koanf:"jwt_secret"`
	SessionTimeout     time.Duration `koanf:"session_timeout"`
	BcryptCost         int           `koanf:"bcrypt_cost"`
	RateLimitReqs      int           `koanf:"rate_limit_reqs"`
	RateLimitWindow    time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled  bool          `koanf:"rate_limit_disabled"`
	LoginRatePerMinute int           `koanf:"login_rate_per_minute"`
	LoginBurst         int           `koanf:"login_burst"`
	CORSOrigins        []string      `koanf:"cors_origins"`
}

// StatsConfig tunes the stats engine.
type StatsConfig struct {
	CacheTTL time.Duration `koanf:"cache_ttl"`
	Timezone string        `koanf:"timezone"` // IANA name or "Local"
}

// Location resolves Timezone. Validate guarantees it loads.
func (s StatsConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
