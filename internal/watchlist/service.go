// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package watchlist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/tomtom215/watchwise/internal/database"
	"github.com/tomtom215/watchwise/internal/events"
	"github.com/tomtom215/watchwise/internal/logging"
	"github.com/tomtom215/watchwise/internal/models"
)

// Publisher announces watchlist changes.
type Publisher interface {
	PublishWatchlistChanged(ctx context.Context, e events.WatchlistChanged) error
}

// Service manages a user's watch records.
type Service struct {
	store database.RecordStore
	pub   Publisher
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for completion dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service. pub may be nil, in which case no events
// are published.
func NewService(store database.RecordStore, pub Publisher, opts ...Option) *Service {
	s := &Service{store: store, pub: pub, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add puts a new title on the user's watchlist. Status defaults to planned.
func (s *Service) Add(ctx context.Context, userID string, req models.AddWatchlistRequest) (*models.WatchRecord, error) {
	now := s.now()

	rec := &models.WatchRecord{
		UserID:      userID,
		TMDBID:      req.TMDBID,
		ContentType: req.ContentType,
		Title:       req.Title,
		Overview:    req.Overview,
		PosterPath:  req.PosterPath,
		ReleaseDate: req.ReleaseDate,
		Genre:       nonNilGenres(req.Genre),
		Duration:    req.Duration,
		Status:      models.StatusPlanned,
	}
	if req.Rating != nil {
		rec.Rating = *req.Rating
	}
	if req.Status != "" {
		rec.SetStatus(req.Status, now)
	}

	if req.ContentType == models.ContentTypeTV {
		rec.Seasons = make([]models.SeasonRecord, 0, len(req.Seasons))
		for _, sr := range req.Seasons {
			season := models.SeasonRecord{
				SeasonNumber: sr.SeasonNumber,
				Status:       models.StatusPlanned,
				EpisodeCount: sr.EpisodeCount,
				Duration:     sr.Duration,
				Episodes:     []models.EpisodeRecord{},
			}
			if sr.Status != "" {
				season.SetStatus(sr.Status, now)
			}
			rec.Seasons = append(rec.Seasons, season)
		}
		sort.SliceStable(rec.Seasons, func(i, j int) bool {
			return rec.Seasons[i].SeasonNumber < rec.Seasons[j].SeasonNumber
		})
	}

	if err := s.store.InsertRecord(ctx, rec); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyInWatchlist
		}
		return nil, fmt.Errorf("add to watchlist: %w", err)
	}

	logging.Ctx(ctx).Info().
		Str("record_id", rec.ID).
		Int64("tmdb_id", rec.TMDBID).
		Str("content_type", string(rec.ContentType)).
		Msg("Added to watchlist")

	s.publish(ctx, userID, rec.ID, events.ActionAdded)
	return rec, nil
}

// Get returns one record of the user.
func (s *Service) Get(ctx context.Context, userID, id string) (*models.WatchRecord, error) {
	rec, err := s.store.GetRecord(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr("get watchlist item", err)
	}
	return rec, nil
}

// List returns the user's records matching filter, newest first.
func (s *Service) List(ctx context.Context, userID string, filter models.WatchlistFilter) ([]models.WatchRecord, error) {
	records, err := s.store.FindRecords(ctx, models.RecordQuery{
		UserID:      userID,
		ContentType: filter.ContentType,
		Status:      filter.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}

	slices.Reverse(records)
	return records, nil
}

// Update applies the non-nil fields of req to a record.
func (s *Service) Update(ctx context.Context, userID, id string, req models.UpdateWatchlistRequest) (*models.WatchRecord, error) {
	rec, err := s.store.GetRecord(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr("update watchlist item", err)
	}

	if req.Status != nil {
		rec.SetStatus(*req.Status, s.now())
	}
	if req.Rating != nil {
		rec.Rating = *req.Rating
	}
	if req.Favorite != nil {
		rec.Favorite = *req.Favorite
	}

	if err := s.store.UpdateRecord(ctx, rec); err != nil {
		return nil, mapStoreErr("update watchlist item", err)
	}

	s.publish(ctx, userID, rec.ID, events.ActionUpdated)
	return rec, nil
}

// UpdateSeason changes the status and episode ratings of one season of a
// TV record. Episodes not yet tracked are added; a nil rating clears one.
func (s *Service) UpdateSeason(ctx context.Context, userID, id string, seasonNumber int, req models.UpdateSeasonRequest) (*models.WatchRecord, error) {
	rec, err := s.store.GetRecord(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr("update season", err)
	}
	if rec.ContentType != models.ContentTypeTV {
		return nil, ErrNotTVShow
	}

	season := rec.Season(seasonNumber)
	if season == nil {
		return nil, ErrSeasonNotFound
	}

	if req.Status != nil {
		season.SetStatus(*req.Status, s.now())
	}
	for _, ep := range req.Episodes {
		applyEpisode(season, ep)
	}

	if err := s.store.UpdateRecord(ctx, rec); err != nil {
		return nil, mapStoreErr("update season", err)
	}

	logging.Ctx(ctx).Debug().
		Str("record_id", rec.ID).
		Int("season", seasonNumber).
		Str("status", string(season.Status)).
		Msg("Season updated")

	s.publish(ctx, userID, rec.ID, events.ActionSeasonUpdated)
	return rec, nil
}

func applyEpisode(season *models.SeasonRecord, req models.EpisodeRatingRequest) {
	for i := range season.Episodes {
		ep := &season.Episodes[i]
		if ep.EpisodeNumber != req.EpisodeNumber {
			continue
		}
		ep.Rating = req.Rating
		if req.Title != "" {
			ep.Title = req.Title
		}
		return
	}

	season.Episodes = append(season.Episodes, models.EpisodeRecord{
		EpisodeNumber: req.EpisodeNumber,
		Title:         req.Title,
		Rating:        req.Rating,
	})
	sort.SliceStable(season.Episodes, func(i, j int) bool {
		return season.Episodes[i].EpisodeNumber < season.Episodes[j].EpisodeNumber
	})
}

// Remove deletes one record.
func (s *Service) Remove(ctx context.Context, userID, id string) error {
	if err := s.store.DeleteRecord(ctx, userID, id); err != nil {
		return mapStoreErr("remove watchlist item", err)
	}

	s.publish(ctx, userID, id, events.ActionRemoved)
	return nil
}

// Clear deletes every record of the user and returns how many were removed.
func (s *Service) Clear(ctx context.Context, userID string) (int, error) {
	n, err := s.store.DeleteAllRecords(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear watchlist: %w", err)
	}

	logging.Ctx(ctx).Info().Int("deleted", n).Msg("Watchlist cleared")

	s.publish(ctx, userID, "", events.ActionCleared)
	return n, nil
}

func (s *Service) publish(ctx context.Context, userID, recordID string, action events.Action) {
	if s.pub == nil {
		return
	}
	err := s.pub.PublishWatchlistChanged(ctx, events.WatchlistChanged{
		UserID:     userID,
		RecordID:   recordID,
		Action:     action,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		logging.CtxErr(ctx, err).
			Str("action", string(action)).
			Msg("Failed to publish watchlist change; cached stats may be stale until expiry")
	}
}

func mapStoreErr(op string, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrItemNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nonNilGenres(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}
