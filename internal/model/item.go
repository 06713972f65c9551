package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Item represents a single reagent or consumable inventory record.
// Date fields carry calendar dates as YYYY-MM-DD strings, the wire and
// storage format; parsing lives in the expiry package.
type Item struct {
	ID            string `db:"id" json:"id"`
	Category      string `db:"category" json:"category"`
	ItemName      string `db:"item_name" json:"itemName"`
	Brand         string `db:"brand" json:"brand"`
	ContentVolume string `db:"content_volume" json:"contentVolume"`
	LotNumber     string `db:"lot_number" json:"lotNumber"`
	DateReceived  string `db:"date_received" json:"dateReceived"`
	ExpiryDate    string `db:"expiry_date" json:"expiryDate"`
	DateOpened    string `db:"date_opened" json:"dateOpened"`
	Status        string `db:"status" json:"status"`
	Quantity      int    `db:"quantity" json:"quantity"`
	Remarks       string `db:"remarks" json:"remarks"`
}

// Item statuses.
const (
	StatusUnopened   = "Unopened"
	StatusOpened     = "Opened"
	StatusOutOfStock = "Out of Stock"
)

// Payload is a raw item submission as it arrives from a form or API client.
// Quantity stays free text so validation can report malformed numbers
// instead of silently coercing them.
type Payload struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	ItemName      string `json:"itemName"`
	Brand         string `json:"brand"`
	ContentVolume string `json:"contentVolume"`
	LotNumber     string `json:"lotNumber"`
	DateReceived  string `json:"dateReceived"`
	ExpiryDate    string `json:"expiryDate"`
	DateOpened    string `json:"dateOpened"`
	Status        string `json:"status"`
	Quantity      string `json:"quantity"`
	Remarks       string `json:"remarks"`
}

// NewItem builds an Item from a payload, filling defaults for every optional
// field and generating an id when the payload has none. Quantity falls back
// to 0 when absent; Validate is where malformed quantities get rejected, not
// this constructor.
func NewItem(p Payload) Item {
	id := p.ID
	if id == "" {
		id = NewID()
	}

	status := p.Status
	if status == "" {
		status = StatusUnopened
	}

	quantity := 0
	if n, err := strconv.Atoi(strings.TrimSpace(p.Quantity)); err == nil && n >= 0 {
		quantity = n
	}

	return Item{
		ID:            id,
		Category:      p.Category,
		ItemName:      p.ItemName,
		Brand:         p.Brand,
		ContentVolume: p.ContentVolume,
		LotNumber:     p.LotNumber,
		DateReceived:  p.DateReceived,
		ExpiryDate:    p.ExpiryDate,
		DateOpened:    p.DateOpened,
		Status:        status,
		Quantity:      quantity,
		Remarks:       p.Remarks,
	}
}

// NewID generates a time-ordered unique item identifier. UUIDv7 carries a
// millisecond timestamp prefix plus a random tail, so ids sort roughly by
// creation time and cannot collide across clients.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
