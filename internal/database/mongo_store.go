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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/watchwise/internal/config"
	"github.com/tomtom215/watchwise/internal/models"
)

// Collection names.
const (
	watchlistCollection = "watchlist"
	usersCollection     = "users"
)

// creationOrder sorts documents oldest first. ObjectIDs are time-ordered,
// so _id breaks ties within one millisecond.
var creationOrder = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

// MongoStore implements Store on MongoDB. Title and username uniqueness
// are enforced by the unique indexes from EnsureIndexes.
type MongoStore struct {
	client  *mongo.Client
	records *mongo.Collection
	users   *mongo.Collection
	now     func() time.Time
}

// OpenMongo connects to uri and verifies the connection with a ping.
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	store := NewMongoStore(client, database)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return store, nil
}

// NewMongoStore uses an already connected client. The store disconnects it
// on Close. Call EnsureIndexes before the first write.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	db := client.Database(database)
	return &MongoStore{
		client:  client,
		records: db.Collection(watchlistCollection),
		users:   db.Collection(usersCollection),
		now:     time.Now,
	}
}

// Driver implements Store.
func (s *MongoStore) Driver() string { return config.DriverMongo }

// EnsureIndexes creates the unique indexes on (user, contentType, tmdbId)
// and username. Creating an existing index is a no-op.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.records.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "contentType", Value: 1}, {Key: "tmdbId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("user_title_unique"),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("user_created"),
		},
	})
	if err != nil {
		return fmt.Errorf("create watchlist indexes: %w", err)
	}

	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}
	return nil
}

// recordFilter builds the query document for q.
func recordFilter(q models.RecordQuery) bson.M {
	filter := bson.M{}
	if q.UserID != "" {
		filter["user"] = q.UserID
	}
	if q.ContentType != "" {
		filter["contentType"] = q.ContentType
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.CompletedSince != nil {
		filter["completedDate"] = bson.M{"$gte": *q.CompletedSince}
	}
	return filter
}

// InsertRecord implements RecordStore.
func (s *MongoStore) InsertRecord(ctx context.Context, r *models.WatchRecord) (err error) {
	defer s.observe("insert_record", time.Now(), &err)

	rec := *r
	rec.ID = primitive.NewObjectID().Hex()
	rec.CreatedAt = storeNow(s.now)
	rec.UpdatedAt = rec.CreatedAt

	if _, err := s.records.InsertOne(ctx, &rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}

	*r = rec
	return nil
}

// GetRecord implements RecordStore.
func (s *MongoStore) GetRecord(ctx context.Context, userID, id string) (rec *models.WatchRecord, err error) {
	defer s.observe("get_record", time.Now(), &err)

	var out models.WatchRecord
	err = s.records.FindOne(ctx, bson.M{"_id": id, "user": userID}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &out, nil
}

// UpdateRecord implements RecordStore. Identity fields (user, contentType,
// tmdbId, createdAt) are never overwritten.
func (s *MongoStore) UpdateRecord(ctx context.Context, r *models.WatchRecord) (err error) {
	defer s.observe("update_record", time.Now(), &err)

	update := bson.M{"$set": bson.M{
		"title":         r.Title,
		"overview":      r.Overview,
		"posterPath":    r.PosterPath,
		"releaseDate":   r.ReleaseDate,
		"genre":         r.Genre,
		"duration":      r.Duration,
		"status":        r.Status,
		"rating":        r.Rating,
		"favorite":      r.Favorite,
		"completedDate": r.CompletedDate,
		"seasons":       r.Seasons,
		"updatedAt":     storeNow(s.now),
	}}

	var updated models.WatchRecord
	err = s.records.FindOneAndUpdate(ctx,
		bson.M{"_id": r.ID, "user": r.UserID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}

	*r = updated
	return nil
}

// DeleteRecord implements RecordStore.
func (s *MongoStore) DeleteRecord(ctx context.Context, userID, id string) (err error) {
	defer s.observe("delete_record", time.Now(), &err)

	res, err := s.records.DeleteOne(ctx, bson.M{"_id": id, "user": userID})
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllRecords implements RecordStore.
func (s *MongoStore) DeleteAllRecords(ctx context.Context, userID string) (n int, err error) {
	defer s.observe("delete_all_records", time.Now(), &err)

	res, err := s.records.DeleteMany(ctx, bson.M{"user": userID})
	if err != nil {
		return 0, fmt.Errorf("delete records: %w", err)
	}
	return int(res.DeletedCount), nil
}

// FindRecords implements RecordStore.
func (s *MongoStore) FindRecords(ctx context.Context, q models.RecordQuery) (out []models.WatchRecord, err error) {
	defer s.observe("find_records", time.Now(), &err)

	cursor, err := s.records.Find(ctx, recordFilter(q), options.Find().SetSort(creationOrder))
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}

	out = []models.WatchRecord{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return out, nil
}

// CreateUser implements UserStore.
func (s *MongoStore) CreateUser(ctx context.Context, u *models.User) (err error) {
	defer s.observe("create_user", time.Now(), &err)

	user := *u
	user.ID = primitive.NewObjectID().Hex()
	user.CreatedAt = storeNow(s.now)

	if _, err := s.users.InsertOne(ctx, &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}

	*u = user
	return nil
}

// GetUserByUsername implements UserStore.
func (s *MongoStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"username": username})
}

// GetUserByID implements UserStore.
func (s *MongoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"_id": id})
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.M) (u *models.User, err error) {
	defer s.observe("get_user", time.Now(), &err)

	var user models.User
	err = s.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// Ping implements Store.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close implements Store.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) observe(op string, start time.Time, err *error) {
	observeOp(config.DriverMongo, op, start, err)
}
