package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/emmaderbe/SocialApp/internal/db"
	"github.com/emmaderbe/SocialApp/internal/model"

	_ "modernc.org/sqlite"
)

// NewTestDB opens a migrated in-memory SQLite database private to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// shared cache keeps the memory database alive across pooled connections
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", filepath.Base(t.Name()), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.SetMaxOpenConns(1)

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// NewTestBolt opens a bolt file in the test's temp dir.
func NewTestBolt(t *testing.T) *bolt.DB {
	t.Helper()

	database, err := db.OpenBolt(filepath.Join(t.TempDir(), "posts.bdb"))
	if err != nil {
		t.Fatalf("failed to open bolt database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedPost inserts a post row directly, bypassing the repository.
func SeedPost(t *testing.T, database *sql.DB, post model.Post) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	var image interface{}
	if len(post.ImageData) > 0 {
		image = post.ImageData
	}

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO posts (id, title, body, liked, image_data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Title, post.Body, boolToInt(post.Liked), image, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
}
