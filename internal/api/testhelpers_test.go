// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/watchwise/internal/auth"
	"github.com/tomtom215/watchwise/internal/config"
	"github.com/tomtom215/watchwise/internal/database"
	"github.com/tomtom215/watchwise/internal/models"
	"github.com/tomtom215/watchwise/internal/stats"
	"github.com/tomtom215/watchwise/internal/watchlist"
)

const testJWTSecret = "this_is_a_very_long_secret_key_for_testing_purposes_12345"

// testEnv is a fully wired API on an in-memory BadgerDB.
type testEnv struct {
	t       *testing.T
	handler http.Handler
	store   *database.BadgerStore
}

type envOptions struct {
	stats        StatsComputer
	loginLimiter *auth.LoginLimiter
	chiConfig    *ChiMiddlewareConfig
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()

	store, err := database.OpenBadger("")
	if err != nil {
		t.Fatalf("Failed to open BadgerDB: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager, err := auth.NewJWTManager(&config.SecurityConfig{JWTSecret: testJWTSecret, SessionTimeout: time.Hour})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	engine := opts.stats
	if engine == nil {
		engine = stats.NewEngine(store, stats.WithLocation(time.UTC))
	}

	chiCfg := opts.chiConfig
	if chiCfg == nil {
		chiCfg = DefaultChiMiddlewareConfig()
		chiCfg.CORSAllowedOrigins = []string{"https://app.example.com"}
		chiCfg.RateLimitDisabled = true
	}

	handler := NewHandler(
		engine,
		watchlist.NewService(store, nil),
		auth.NewService(store, jwtManager, bcrypt.MinCost),
		store,
		"test",
	)
	router := NewRouter(handler, auth.NewMiddleware(jwtManager), opts.loginLimiter, chiCfg)

	return &testEnv{t: t, handler: router.SetupChi(), store: store}
}

// do sends a request with an optional bearer token and JSON body.
func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			e.t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// signup creates an account and returns its token.
func (e *testEnv) signup(username string) string {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/api/auth/signup", "", models.SignupRequest{Username: username, Password: "password123"})
	if rec.Code != http.StatusCreated {
		e.t.Fatalf("signup status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp models.AuthResponse
	decodeBody(e.t, rec, &resp)
	return resp.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	return body.Error
}

func floatPtr(f float64) *float64 { return &f }

// failingStats always fails to compute.
type failingStats struct{ err error }

func (f failingStats) Compute(context.Context, string, models.ContentType, models.Period) (*models.StatsResult, error) {
	return nil, f.err
}

// failingPinger reports an unreachable store.
type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return database.ErrClosed }
func (failingPinger) Driver() string { return "badger" }
