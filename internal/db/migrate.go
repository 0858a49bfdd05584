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
	`CREATE TABLE IF NOT EXISTS analysis_cache (
		key         TEXT PRIMARY KEY,
		result_json TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_analysis_cache_created ON analysis_cache(created_at)`,

	`CREATE TABLE IF NOT EXISTS day_records (
		date            TEXT PRIMARY KEY CHECK(length(date) = 10),
		energy          TEXT NOT NULL DEFAULT 'medium'
		                CHECK(energy IN ('high','medium','low')),
		schedules_json  TEXT NOT NULL DEFAULT '[]',
		review          TEXT NOT NULL DEFAULT '',
		completed_count INTEGER NOT NULL DEFAULT 0 CHECK(completed_count >= 0),
		updated_at      TEXT NOT NULL
	)`,

	// Advisor selection is remembered per day.
	`ALTER TABLE day_records ADD COLUMN advisors_json TEXT NOT NULL DEFAULT '[]'`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id               TEXT PRIMARY KEY DEFAULT 'default',
		traits_json      TEXT NOT NULL DEFAULT '[]',
		medications_json TEXT NOT NULL DEFAULT '[]',
		preferences_json TEXT NOT NULL DEFAULT '[]',
		sleep_goal       TEXT NOT NULL DEFAULT '',
		notes            TEXT NOT NULL DEFAULT ''
	)`,

	`INSERT OR IGNORE INTO user_profile (id) VALUES ('default')`,
}
