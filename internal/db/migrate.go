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
	`CREATE TABLE IF NOT EXISTS materials (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		cost_per_sqm REAL NOT NULL DEFAULT 0 CHECK(cost_per_sqm >= 0),
		waste_factor REAL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		unit_price REAL NOT NULL DEFAULT 0 CHECK(unit_price >= 0),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS cabinet_models (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		parameters  TEXT NOT NULL DEFAULT '{}',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	// Material columns are soft references: removing a catalog material must
	// not block, the configuration just prices that role at zero.
	`CREATE TABLE IF NOT EXISTS configurations (
		id                TEXT PRIMARY KEY,
		model_id          TEXT NOT NULL REFERENCES cabinet_models(id) ON DELETE CASCADE,
		name              TEXT NOT NULL DEFAULT '',
		width_mm          REAL NOT NULL CHECK(width_mm > 0),
		height_mm         REAL NOT NULL CHECK(height_mm > 0),
		depth_mm          REAL NOT NULL CHECK(depth_mm > 0),
		body_material_id  TEXT,
		door_material_id  TEXT,
		shelf_material_id TEXT,
		body_thickness    REAL,
		door_thickness    REAL,
		shelf_thickness   REAL,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_configurations_model ON configurations(model_id)`,

	`CREATE TABLE IF NOT EXISTS quotes (
		id               TEXT PRIMARY KEY,
		configuration_id TEXT NOT NULL REFERENCES configurations(id) ON DELETE CASCADE,
		model_id         TEXT NOT NULL,
		label            TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL DEFAULT 'draft'
		                 CHECK(status IN ('draft','finalized')),
		breakdown        TEXT NOT NULL,
		total_cost       REAL NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quotes_configuration ON quotes(configuration_id)`,
}
