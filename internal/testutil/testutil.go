// Package testutil provides shared test fixtures for backend tests.
package testutil

import (
	"testing"

	"atrium/internal/cache"
	"atrium/internal/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB opens an isolated in-memory sqlite database with the full
// schema migrated. Each call gets its own database so tests can run in
// parallel.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: database.NewGormLogger(),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// NewTestRedis starts a miniredis instance, points the cache package at
// it, and restores the previous client when the test finishes.
func NewTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	prev := cache.GetClient()
	cache.SetClient(rdb)
	t.Cleanup(func() {
		_ = rdb.Close()
		cache.SetClient(prev)
	})

	return mr
}
