package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS items (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		due_at       TEXT,
		priority     TEXT NOT NULL DEFAULT 'MEDIUM'
		             CHECK(priority IN ('LOW','MEDIUM','HIGH')),
		recurrence   TEXT NOT NULL DEFAULT 'NONE'
		             CHECK(recurrence IN ('NONE','DAILY','WEEKLY')),
		category     TEXT NOT NULL DEFAULT '',
		pinned       INTEGER NOT NULL DEFAULT 0,
		position     INTEGER NOT NULL DEFAULT 0,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_user ON items(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_user_position ON items(user_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_items_user_completed ON items(user_id, completed)`,

	`CREATE TABLE IF NOT EXISTS subtasks (
		id         TEXT PRIMARY KEY,
		item_id    TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_subtasks_item ON subtasks(item_id)`,

	`CREATE TABLE IF NOT EXISTS favorite_quotes (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		quote      TEXT NOT NULL,
		author     TEXT NOT NULL DEFAULT '',
		tone       TEXT NOT NULL DEFAULT 'motivational',
		source     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_favorite_quotes_user ON favorite_quotes(user_id)`,
}
