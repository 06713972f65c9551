package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is the full database schema. Optional text columns are nullable;
// the store maps empty strings to NULL on write and back on read. Dates are
// stored as YYYY-MM-DD text so the backend's default ordering matches
// calendar order.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id             TEXT PRIMARY KEY,
    category       TEXT,
    item_name      TEXT NOT NULL,
    brand          TEXT,
    content_volume TEXT,
    lot_number     TEXT,
    date_received  TEXT,
    expiry_date    TEXT NOT NULL,
    date_opened    TEXT,
    status         TEXT NOT NULL DEFAULT 'Unopened' CHECK (status IN ('Unopened', 'Opened', 'Out of Stock')),
    quantity       INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    remarks        TEXT
);

CREATE INDEX IF NOT EXISTS idx_items_expiry_date ON items(expiry_date);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
