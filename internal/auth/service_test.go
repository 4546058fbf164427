// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/watchwise/internal/database"
	"github.com/tomtom215/watchwise/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := database.OpenBadger("")
	if err != nil {
		t.Fatalf("Failed to open BadgerDB: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewService(store, newTestJWTManager(t, time.Hour), bcrypt.MinCost)
}

func TestService_SignupAndLogin(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	signed, err := svc.Signup(ctx, models.SignupRequest{Username: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if signed.Token == "" || signed.User.ID == "" {
		t.Fatalf("Signup() = %+v, want token and user id", signed)
	}
	if signed.User.Username != "alice" {
		t.Errorf("Username = %q, want alice", signed.User.Username)
	}

	logged, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if logged.User.ID != signed.User.ID {
		t.Errorf("Login() user id = %q, want %q", logged.User.ID, signed.User.ID)
	}

	claims, err := svc.tokens.ValidateToken(logged.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != signed.User.ID {
		t.Errorf("token user id = %q, want %q", claims.UserID, signed.User.ID)
	}

	me, err := svc.Me(ctx, claims.UserID)
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if me.Username != "alice" {
		t.Errorf("Me() username = %q, want alice", me.Username)
	}
}

func TestService_SignupDuplicate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	req := models.SignupRequest{Username: "alice", Password: "password123"}
	if _, err := svc.Signup(ctx, req); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if _, err := svc.Signup(ctx, req); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("second Signup() error = %v, want ErrUsernameTaken", err)
	}
}

func TestService_LoginInvalidCredentials(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, models.SignupRequest{Username: "alice", Password: "password123"}); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{name: "wrong password", req: models.LoginRequest{Username: "alice", Password: "password124"}},
		{name: "unknown user", req: models.LoginRequest{Username: "bob", Password: "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.req); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestService_MeUnknownUser(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	if _, err := svc.Me(context.Background(), "missing"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Me() error = %v, want ErrNotFound", err)
	}
}
