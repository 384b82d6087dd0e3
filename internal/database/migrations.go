package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations run in version order; each applies exactly once
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_posts",
		SQL: `
			CREATE TABLE IF NOT EXISTS posts (
				id TEXT PRIMARY KEY,
				lat REAL NOT NULL,
				lng REAL NOT NULL,
				timestamp INTEGER NOT NULL,
				user_id TEXT NOT NULL,
				likes INTEGER NOT NULL DEFAULT 0,
				dislikes INTEGER NOT NULL DEFAULT 0,
				visibility TEXT NOT NULL DEFAULT 'public',
				text TEXT,
				user_name TEXT,
				user_image TEXT,
				is_anonymous INTEGER NOT NULL DEFAULT 0,
				user_is_premium INTEGER NOT NULL DEFAULT 0,
				active_badge_id TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_posts_timestamp ON posts(timestamp);
			CREATE INDEX IF NOT EXISTS idx_posts_user ON posts(user_id);
		`,
	},
	{
		Version: 2,
		Name:    "create_people",
		SQL: `
			CREATE TABLE IF NOT EXISTS people (
				id TEXT PRIMARY KEY,
				lat REAL NOT NULL,
				lng REAL NOT NULL,
				last_seen INTEGER NOT NULL DEFAULT 0,
				is_self INTEGER NOT NULL DEFAULT 0,
				name TEXT,
				image TEXT,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
}

// Migrate applies any pending migrations in version order
func Migrate(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}

// appliedVersions returns the set of already applied migration versions
func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
