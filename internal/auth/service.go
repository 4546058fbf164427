// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tomtom215/watchwise/internal/database"
	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/metrics"
	"github.com/tomtom215/watchwise/internal/models"
)

// Service implements account signup, login and profile lookup.
type Service struct {
	users      database.UserStore
	tokens     *JWTManager
	bcryptCost int

	// dummyHash is compared against when the username does not exist so
	// unknown users take as long as wrong passwords.
	dummyOnce sync.Once
	dummyHash string
}

// NewService creates an auth Service.
func NewService(users database.UserStore, tokens *JWTManager, bcryptCost int) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Signup creates an account and returns a token for it.
func (s *Service) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	hash, err := HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		metrics.RecordAuthAttempt("signup", "error")
		return nil, err
	}

	user := &models.User{Username: req.Username, PasswordHash: hash}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			metrics.RecordAuthAttempt("signup", "conflict")
			return nil, ErrUsernameTaken
		}
		metrics.RecordAuthAttempt("signup", "error")
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp, err := s.issue(user)
	if err != nil {
		metrics.RecordAuthAttempt("signup", "error")
		return nil, err
	}

	metrics.RecordAuthAttempt("signup", "success")
	logging.Ctx(ctx).Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User signed up")
	return resp, nil
}

// Login verifies credentials and returns a fresh token.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			_ = CheckPassword(s.placeholderHash(), req.Password)
			metrics.RecordAuthAttempt("login", "failure")
			return nil, ErrInvalidCredentials
		}
		metrics.RecordAuthAttempt("login", "error")
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := CheckPassword(user.PasswordHash, req.Password); err != nil {
		metrics.RecordAuthAttempt("login", "failure")
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	resp, err := s.issue(user)
	if err != nil {
		metrics.RecordAuthAttempt("login", "error")
		return nil, err
	}

	metrics.RecordAuthAttempt("login", "success")
	logging.Ctx(ctx).Debug().Str("user_id", user.ID).Msg("User logged in")
	return resp, nil
}

// Me returns the profile of the user with the given id.
func (s *Service) Me(ctx context.Context, userID string) (*models.UserProfile, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *Service) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user.Profile()}, nil
}

func (s *Service) placeholderHash() string {
	s.dummyOnce.Do(func() {
		hash, err := HashPassword("watchwise-placeholder-password", s.bcryptCost)
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}
