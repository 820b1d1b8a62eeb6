package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"server/config"
)

var (
	mu       sync.Mutex
	client   *mongo.Client
	database *mongo.Database
)

// Get returns the process-wide database handle, connecting on first use.
// The handle is cached across requests on a warm process; a failed connect
// is not cached, so the next caller retries.
func Get(ctx context.Context) (*mongo.Database, error) {
	mu.Lock()
	defer mu.Unlock()
	if database != nil {
		return database, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MONGO_URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	client = c
	database = c.Database(config.MONGO_DATABASE)
	slog.Info("connected to mongo", "database", config.MONGO_DATABASE)
	return database, nil
}

// Ping verifies the cached connection, establishing it if needed.
func Ping(ctx context.Context) error {
	if _, err := Get(ctx); err != nil {
		return err
	}
	return client.Ping(ctx, readpref.Primary())
}

// Stores returns the typed collection accessors for the gallery core.
func Stores(ctx context.Context) (*CategoryCollection, *PhotoCollection, *SiteConfigCollection, error) {
	d, err := Get(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return &CategoryCollection{d.Collection("categories")},
		&PhotoCollection{d.Collection("photos")},
		&SiteConfigCollection{d.Collection("siteConfig")},
		nil
}
