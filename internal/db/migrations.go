package db

import (
	"database/sql"
	"fmt"
)

// Base schema - ids come from the remote feed (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS posts (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  body TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add liked column to posts
	exists, err := hasColumn(db, "posts", "liked")
	if err != nil {
		return fmt.Errorf("check liked column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE posts ADD COLUMN liked INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add liked column: %w", err)
		}
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_posts_liked ON posts(liked)`); err != nil {
		return fmt.Errorf("create idx_posts_liked: %w", err)
	}

	// Migration 2: Add image_data column to posts for downloaded images
	exists, err = hasColumn(db, "posts", "image_data")
	if err != nil {
		return fmt.Errorf("check image_data column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE posts ADD COLUMN image_data BLOB`); err != nil {
			return fmt.Errorf("add image_data column: %w", err)
		}
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
