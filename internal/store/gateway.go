// Package store is the persistence gateway: it owns the row-to-Item field
// mapping and performs load/upsert/delete against the items table. Every
// mutation re-fetches the full collection so callers always observe the
// authoritative post-write state, including changes made by other clients.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/northmed/reagent/internal/model"
)

// Gateway performs item persistence against an injected database handle.
type Gateway struct {
	db *sqlx.DB
}

// NewGateway creates a gateway backed by the given database.
func NewGateway(db *sqlx.DB) *Gateway {
	return &Gateway{db: db}
}

// itemRow is the storage shape of an item. Optional text fields are nullable
// so that absent values stay absent in the row-store; status and quantity
// always hold concrete values.
type itemRow struct {
	ID            string         `db:"id"`
	Category      sql.NullString `db:"category"`
	ItemName      string         `db:"item_name"`
	Brand         sql.NullString `db:"brand"`
	ContentVolume sql.NullString `db:"content_volume"`
	LotNumber     sql.NullString `db:"lot_number"`
	DateReceived  sql.NullString `db:"date_received"`
	ExpiryDate    string         `db:"expiry_date"`
	DateOpened    sql.NullString `db:"date_opened"`
	Status        string         `db:"status"`
	Quantity      int            `db:"quantity"`
	Remarks       sql.NullString `db:"remarks"`
}

func toRow(it model.Item) itemRow {
	return itemRow{
		ID:            it.ID,
		Category:      nullable(it.Category),
		ItemName:      it.ItemName,
		Brand:         nullable(it.Brand),
		ContentVolume: nullable(it.ContentVolume),
		LotNumber:     nullable(it.LotNumber),
		DateReceived:  nullable(it.DateReceived),
		ExpiryDate:    it.ExpiryDate,
		DateOpened:    nullable(it.DateOpened),
		Status:        it.Status,
		Quantity:      it.Quantity,
		Remarks:       nullable(it.Remarks),
	}
}

func fromRow(r itemRow) model.Item {
	return model.Item{
		ID:            r.ID,
		Category:      r.Category.String,
		ItemName:      r.ItemName,
		Brand:         r.Brand.String,
		ContentVolume: r.ContentVolume.String,
		LotNumber:     r.LotNumber.String,
		DateReceived:  r.DateReceived.String,
		ExpiryDate:    r.ExpiryDate,
		DateOpened:    r.DateOpened.String,
		Status:        r.Status,
		Quantity:      r.Quantity,
		Remarks:       r.Remarks.String,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Load returns all items ordered by ascending expiry date. NULL expiry
// ordering follows the backend default (NULLs first).
func (g *Gateway) Load(ctx context.Context) ([]model.Item, error) {
	var rows []itemRow
	err := g.db.SelectContext(ctx, &rows,
		`SELECT id, category, item_name, brand, content_volume, lot_number,
		        date_received, expiry_date, date_opened, status, quantity, remarks
		 FROM items ORDER BY expiry_date ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}

	items := make([]model.Item, len(rows))
	for i, r := range rows {
		items[i] = fromRow(r)
	}
	return items, nil
}

// Upsert inserts or replaces an item by id, then returns the refreshed
// collection.
func (g *Gateway) Upsert(ctx context.Context, it model.Item) ([]model.Item, error) {
	r := toRow(it)
	_, err := g.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO items
		     (id, category, item_name, brand, content_volume, lot_number,
		      date_received, expiry_date, date_opened, status, quantity, remarks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Category, r.ItemName, r.Brand, r.ContentVolume, r.LotNumber,
		r.DateReceived, r.ExpiryDate, r.DateOpened, r.Status, r.Quantity, r.Remarks,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting item %s: %w", it.ID, err)
	}

	return g.Load(ctx)
}

// Remove deletes the item with the given id, then returns the refreshed
// collection. Deleting a non-existent id is not an error.
func (g *Gateway) Remove(ctx context.Context, id string) ([]model.Item, error) {
	_, err := g.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("deleting item %s: %w", id, err)
	}

	return g.Load(ctx)
}
