package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents one schema migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in order; never edit an applied entry, append a
// new version instead
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_sessions",
		SQL: `
			CREATE TABLE IF NOT EXISTS sessions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				player TEXT NOT NULL DEFAULT '',
				source_file TEXT NOT NULL DEFAULT '',
				sample_count INTEGER NOT NULL DEFAULT 0,
				duration_s REAL NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_samples",
		SQL: `
			CREATE TABLE IF NOT EXISTS samples (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
				ts REAL NOT NULL,
				x REAL NOT NULL,
				y REAL NOT NULL,
				speed REAL NOT NULL DEFAULT 0,
				heading REAL NOT NULL DEFAULT 0,
				cum_distance REAL NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_samples_session_ts ON samples(session_id, ts)
		`,
	},
	{
		Version: 3,
		Name:    "create_session_metrics",
		SQL: `
			CREATE TABLE IF NOT EXISTS session_metrics (
				session_id INTEGER PRIMARY KEY REFERENCES sessions(id) ON DELETE CASCADE,
				total_distance_m REAL NOT NULL DEFAULT 0,
				zone_def_s REAL NOT NULL DEFAULT 0,
				zone_mid_s REAL NOT NULL DEFAULT 0,
				zone_att_s REAL NOT NULL DEFAULT 0,
				sprint_time_s REAL NOT NULL DEFAULT 0,
				quick_turns INTEGER NOT NULL DEFAULT 0,
				avg_speed_ms REAL NOT NULL DEFAULT 0,
				max_speed_ms REAL NOT NULL DEFAULT 0,
				speed_p50 REAL NOT NULL DEFAULT 0,
				speed_p90 REAL NOT NULL DEFAULT 0,
				speed_p95 REAL NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 4,
		Name:    "session_metrics_spatial_summary",
		SQL: `
			ALTER TABLE session_metrics ADD COLUMN mean_heading_deg REAL NOT NULL DEFAULT 0;
			ALTER TABLE session_metrics ADD COLUMN centroid_x REAL NOT NULL DEFAULT 0;
			ALTER TABLE session_metrics ADD COLUMN centroid_y REAL NOT NULL DEFAULT 0;
			ALTER TABLE session_metrics ADD COLUMN radius_gyration_m REAL NOT NULL DEFAULT 0
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	rows.Close()

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}
