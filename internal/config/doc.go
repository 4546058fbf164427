// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

/*
Package config provides centralized configuration management for WatchWise.

# Configuration Sources

Configuration is layered with koanf; later layers override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, else config.yaml / config.yml in the
    working directory, else /etc/watchwise/config.yaml
 3. Environment variables (explicit mapping, unmapped variables are ignored)

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - PORT / HTTP_PORT: Listen port (default: 5000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Database:
  - DB_DRIVER: badger or mongo (default: badger)
  - BADGER_PATH: Data directory for the embedded store (default: /data/watchwise)
  - MONGODB_URI: Connection string, required when DB_DRIVER=mongo
  - MONGODB_DATABASE: Database name (default: watchwise)
  - DB_TIMEOUT: Per-operation store timeout (default: 10s)
  - DB_BREAKER_ENABLED: Circuit breaker around store reads (default: true)

Security:
  - JWT_SECRET: HMAC signing secret, at least 32 characters (required)
  - SESSION_TIMEOUT: Token lifetime (default: 24h)
  - BCRYPT_COST: Password hashing cost (default: 12)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / RATE_LIMIT_DISABLED: API rate limit per IP
  - LOGIN_RATE_PER_MINUTE / LOGIN_BURST: Login attempts per IP
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Stats:
  - STATS_CACHE_TTL: Result cache lifetime, 0 disables (default: 5m)
  - STATS_TIMEZONE: IANA zone for period bounds and weekdays (default: Local)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
