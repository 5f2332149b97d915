package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// The DDL is shared between the drivers except for the auto-increment id
// column, which each dialect spells differently.
const (
	pgSerial     = "BIGSERIAL PRIMARY KEY"
	sqliteSerial = "INTEGER PRIMARY KEY AUTOINCREMENT"
)

func schemaStatements(serial string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS warehouses (
			id %s,
			warehouse_type TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL,
			google_location TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			postal_code TEXT NOT NULL,
			zone TEXT NOT NULL,
			contact_person TEXT NOT NULL,
			contact_number TEXT NOT NULL,
			total_space_sqft TEXT NOT NULL,
			offered_space_sqft TEXT NOT NULL DEFAULT '',
			number_of_docks TEXT NOT NULL DEFAULT '',
			clear_height_ft TEXT NOT NULL DEFAULT '',
			compliances TEXT NOT NULL,
			other_specifications TEXT NOT NULL DEFAULT '',
			rate_per_sqft TEXT NOT NULL,
			availability TEXT NOT NULL DEFAULT '',
			uploaded_by TEXT NOT NULL,
			is_broker TEXT NOT NULL DEFAULT '',
			photos TEXT,
			created_at TIMESTAMP NOT NULL
		)`, serial),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS warehouse_data (
			id %s,
			warehouse_id BIGINT NOT NULL REFERENCES warehouses(id),
			warehouse_owner_type TEXT NOT NULL DEFAULT '',
			fire_noc_available TEXT NOT NULL DEFAULT '',
			fire_safety_measures TEXT NOT NULL DEFAULT '',
			land_type TEXT NOT NULL DEFAULT '',
			vaastu_compliance TEXT NOT NULL DEFAULT '',
			approach_road_width TEXT NOT NULL DEFAULT '',
			dimensions TEXT NOT NULL DEFAULT '',
			parking_docking_space TEXT NOT NULL DEFAULT '',
			pollution_zone TEXT NOT NULL DEFAULT '',
			power_kva TEXT NOT NULL DEFAULT ''
		)`, serial),
		`CREATE TABLE IF NOT EXISTS drafts (
			sender TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS message_logs (
			id %s,
			sender_number TEXT NOT NULL,
			message_body TEXT NOT NULL,
			status TEXT NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			media_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`, serial),
		`CREATE TABLE IF NOT EXISTS verified_numbers (
			number TEXT PRIMARY KEY,
			label TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,
	}
}

// Migrate creates the schema for the given driver if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	serial := pgSerial
	if driver == "sqlite" {
		serial = sqliteSerial
	}
	for _, stmt := range schemaStatements(serial) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
