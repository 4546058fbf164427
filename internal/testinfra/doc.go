// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

// Package testinfra provides test infrastructure for integration testing with containers.
//
// It uses testcontainers-go to run a real MongoDB for the MongoStore tests.
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// # MongoDB Container
//
//	func TestMongoStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongo)
//
//	    store, err := database.OpenMongo(ctx, mongo.URI, "watchwise_test")
//	    // ...
//	}
//
// Tests without Docker are skipped rather than failed.
package testinfra
