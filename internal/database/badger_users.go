// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/watchwise/internal/models"
)

// storedUser is the badger value for an account. models.User hides the
// password hash from JSON, so it cannot be persisted directly.
type storedUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u storedUser) toModel() *models.User {
	return &models.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

// CreateUser implements UserStore.
func (s *BadgerStore) CreateUser(ctx context.Context, u *models.User) (err error) {
	defer s.observe("create_user", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate user id: %w", err)
	}

	stored := storedUser{
		ID:           id.String(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    storeNow(s.now),
	}
	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	err = s.update(func(txn *badger.Txn) error {
		nameKey := []byte(usernameKeyPrefix + stored.Username)
		if _, err := txn.Get(nameKey); err == nil {
			return ErrDuplicate
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check username: %w", err)
		}

		if err := txn.Set([]byte(userKeyPrefix+stored.ID), data); err != nil {
			return fmt.Errorf("set user: %w", err)
		}
		return txn.Set(nameKey, []byte(stored.ID))
	})
	if err != nil {
		return s.mapTxnErr(err)
	}

	*u = *stored.toModel()
	return nil
}

// GetUserByUsername implements UserStore.
func (s *BadgerStore) GetUserByUsername(ctx context.Context, username string) (u *models.User, err error) {
	defer s.observe("get_user", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(usernameKeyPrefix + username))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get username: %w", err)
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("read username index: %w", err)
		}

		u, err = getUserTxn(txn, string(id))
		return err
	})
	if err != nil {
		return nil, s.mapTxnErr(err)
	}
	return u, nil
}

// GetUserByID implements UserStore.
func (s *BadgerStore) GetUserByID(ctx context.Context, id string) (u *models.User, err error) {
	defer s.observe("get_user", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		var txErr error
		u, txErr = getUserTxn(txn, id)
		return txErr
	})
	if err != nil {
		return nil, s.mapTxnErr(err)
	}
	return u, nil
}

func getUserTxn(txn *badger.Txn, id string) (*models.User, error) {
	item, err := txn.Get([]byte(userKeyPrefix + id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var stored storedUser
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &stored)
	}); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	return stored.toModel(), nil
}
