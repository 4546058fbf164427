// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/watchwise/internal/config"
)

const testSecret = "this_is_a_very_long_secret_key_for_testing_purposes_12345"

func newTestJWTManager(t *testing.T, timeout time.Duration) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret, SessionTimeout: timeout})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return m
}

func TestNewJWTManager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.SecurityConfig
		wantErr error
	}{
		{
			name: "valid secret",
			cfg:  &config.SecurityConfig{JWTSecret: testSecret, SessionTimeout: 24 * time.Hour},
		},
		{
			name:    "empty secret",
			cfg:     &config.SecurityConfig{SessionTimeout: 24 * time.Hour},
			wantErr: ErrMissingSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			manager, err := NewJWTManager(tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewJWTManager() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && manager == nil {
				t.Error("NewJWTManager() returned nil manager")
			}
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()
	m := newTestJWTManager(t, time.Hour)

	token, err := m.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want alice", claims.Username)
	}
	if claims.Subject != "user-1" {
		t.Errorf("Subject = %q, want user-1", claims.Subject)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()
	m := newTestJWTManager(t, time.Hour)

	issued := time.Now()
	m.now = func() time.Time { return issued }
	token, err := m.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := m.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_Rejects(t *testing.T) {
	t.Parallel()
	m := newTestJWTManager(t, time.Hour)

	other, err := NewJWTManager(&config.SecurityConfig{JWTSecret: "another_secret_that_is_long_enough_for_tests", SessionTimeout: time.Hour})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	foreign, err := other.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString(none) error = %v", err)
	}

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username:         "alice",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	missingUID, err := noUser.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: foreign},
		{name: "alg none", token: unsigned},
		{name: "missing user id", token: missingUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := m.ValidateToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
