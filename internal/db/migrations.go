package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: add a status index for the dashboard's out-of-stock tally
	// on databases created before the index existed.
	`CREATE INDEX IF NOT EXISTS idx_items_status ON items(status)`,
}

// Migrate ensures the schema exists and runs the migrations in order.
func Migrate(db *sqlx.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
