// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package auth

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/metrics"
)

// Limiter entries idle for longer than this are dropped by cleanup.
const limiterIdleTTL = time.Hour

// LoginLimiter implements per-IP throttling of login attempts with
// automatic cleanup of idle entries.
type LoginLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	now      func() time.Time

	stopOnce  sync.Once
	stopClean chan struct{}
}

// limiterEntry wraps a rate limiter with last access time
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewLoginLimiter allows perMinute attempts per IP with the given burst.
// Call Stop to end the cleanup goroutine.
func NewLoginLimiter(perMinute, burst int) *LoginLimiter {
	l := newLoginLimiter(perMinute, burst, time.Now)
	go l.startCleanup(5 * time.Minute)
	return l
}

func newLoginLimiter(perMinute, burst int, now func() time.Time) *LoginLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &LoginLimiter{
		limiters:  make(map[string]*limiterEntry),
		rate:      rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     burst,
		now:       now,
		stopClean: make(chan struct{}),
	}
}

// Allow reports whether an attempt from ip may proceed now.
func (l *LoginLimiter) Allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	entry, exists := l.limiters[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastAccess = now
	limiter := entry.limiter
	l.mu.Unlock()

	return limiter.AllowN(now, 1)
}

// Limit is middleware that answers 429 once an IP exceeds its budget.
func (l *LoginLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.Allow(ip) {
			logging.Ctx(r.Context()).Warn().Str("ip", ip).Msg("Login rate limit exceeded")
			metrics.RecordAuthAttempt("login", "rate_limited")
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(1/float64(l.rate)))))
			writeError(w, http.StatusTooManyRequests, "Too many login attempts, please try again later")
			return
		}
		next(w, r)
	}
}

// Len returns the number of tracked IPs.
func (l *LoginLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// startCleanup periodically removes stale limiters
func (l *LoginLimiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopClean:
			return
		}
	}
}

func (l *LoginLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := l.now().Add(-limiterIdleTTL)
	for ip, entry := range l.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(l.limiters, ip)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *LoginLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopClean) })
}

// clientIP returns the host part of RemoteAddr. Proxy headers are resolved
// earlier by chi's RealIP middleware.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
