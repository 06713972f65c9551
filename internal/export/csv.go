// Package export renders an item view as a CSV document for download.
package export

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/northmed/reagent/internal/expiry"
	"github.com/northmed/reagent/internal/model"
)

// ErrNothingToExport signals that the current view has no rows; no document
// is produced.
var ErrNothingToExport = errors.New("nothing to export")

// header is the fixed 12-column CSV header.
var header = []string{
	"Category",
	"Item Name",
	"Brand / Supplier",
	"Content Volume",
	"Lot Number",
	"Date Received",
	"Expiry Date",
	"Date Opened",
	"Status",
	"Quantity Remaining",
	"Remarks",
	"Expiry Status",
}

// CSV renders the given items as a UTF-8, comma-delimited, CRLF-terminated
// document with every field double-quoted. Returns ErrNothingToExport when
// the view is empty.
func CSV(items []model.Item, today time.Time) ([]byte, error) {
	if len(items) == 0 {
		return nil, ErrNothingToExport
	}

	var b strings.Builder
	writeRecord(&b, header)
	for _, it := range items {
		writeRecord(&b, []string{
			it.Category,
			it.ItemName,
			it.Brand,
			it.ContentVolume,
			it.LotNumber,
			expiry.Format(it.DateReceived),
			expiry.Format(it.ExpiryDate),
			expiry.Format(it.DateOpened),
			it.Status,
			strconv.Itoa(it.Quantity),
			flattenNewlines(it.Remarks),
			expiry.Classify(it.ExpiryDate, today).Label,
		})
	}
	return []byte(b.String()), nil
}

// writeRecord appends one CRLF-terminated record with every field quoted and
// internal quotes doubled. encoding/csv only quotes fields that need it, so
// the fixed always-quoted format is written directly.
func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}

// flattenNewlines collapses line breaks in free-text remarks to single
// spaces so a record stays on one CSV line.
func flattenNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// Filename returns the download filename for an export taken at the given
// instant: the UTC timestamp with colons and the date/time separator
// replaced by hyphens.
func Filename(now time.Time) string {
	return "north-med-reagent-inventory-" + now.UTC().Format("2006-01-02-15-04-05") + ".csv"
}
