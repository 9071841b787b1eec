package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database. Tables are created
// with plain DDL because the entity defaults (gen_random_uuid, now)
// are Postgres functions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")

	statements := []string{
		`CREATE TABLE event_records (
			id TEXT PRIMARY KEY,
			event_type TEXT NOT NULL,
			scope TEXT NOT NULL,
			payload BLOB NOT NULL,
			created_at DATETIME
		)`,
		`CREATE TABLE app_notifications (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT,
			icon TEXT,
			action TEXT,
			read BOOLEAN DEFAULT FALSE,
			created_at DATETIME,
			read_at DATETIME
		)`,
		`CREATE TABLE email_outbox (
			id TEXT PRIMARY KEY,
			event_type TEXT NOT NULL,
			recipient TEXT NOT NULL,
			subject TEXT NOT NULL,
			html TEXT NOT NULL,
			attachments BLOB,
			status TEXT NOT NULL DEFAULT 'PENDING',
			retry_count INTEGER DEFAULT 0,
			error TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			processed_at DATETIME
		)`,
		`CREATE TABLE history_entries (
			id TEXT PRIMARY KEY,
			resource_type TEXT NOT NULL,
			resource_id TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at DATETIME
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error, "failed to create test schema")
	}

	return db
}
