// Package query implements filtering, sorting and alert computation over an
// in-memory item collection. All functions are pure: inputs are never
// mutated and results are freshly allocated.
package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/northmed/reagent/internal/expiry"
	"github.com/northmed/reagent/internal/model"
)

// LowStockThreshold is the fixed quantity at or below which an item counts
// as low stock.
const LowStockThreshold = 2

// Sort directions.
const (
	Ascending  = "asc"
	Descending = "desc"
)

// Filters holds the independently-optional filter criteria. Zero values
// impose no constraint.
type Filters struct {
	Category string `json:"category"`
	Status   string `json:"status"`
	Search   string `json:"search"`
	Expiry   string `json:"expiry"` // classification code: expired, warning or good
	LowStock bool   `json:"lowStock"`
}

// Alerts tallies the attention-worthy states across a collection. ZeroQty is
// independent of status, so an out-of-stock item with zero quantity
// increments both counters.
type Alerts struct {
	ExpSoon    int `json:"expSoon"`
	Expired    int `json:"expired"`
	OutOfStock int `json:"outOfStock"`
	ZeroQty    int `json:"zeroQty"`
}

// Filter returns the items satisfying every active criterion.
func Filter(items []model.Item, f Filters, today time.Time) []model.Item {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	matched := make([]model.Item, 0, len(items))
	for _, it := range items {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		if search != "" && !strings.Contains(searchText(it), search) {
			continue
		}
		if f.Expiry != "" && expiry.Classify(it.ExpiryDate, today).Code != f.Expiry {
			continue
		}
		if f.LowStock && it.Quantity > LowStockThreshold {
			continue
		}
		matched = append(matched, it)
	}
	return matched
}

// searchText concatenates an item's searchable fields, lowercased, with
// empty fields skipped.
func searchText(it model.Item) string {
	fields := []string{it.Category, it.ItemName, it.Brand, it.ContentVolume, it.LotNumber, it.Remarks}
	parts := fields[:0]
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Sort returns a stably ordered copy of items; the input is untouched.
// An empty field returns an order-preserving copy. Quantity compares
// numerically, fields whose name contains "date" compare as parsed dates
// with unparseable values treated as the epoch, and everything else compares
// case-insensitively.
func Sort(items []model.Item, field, direction string) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)

	if field == "" {
		return out
	}

	desc := direction == Descending

	if field == "quantity" {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[j].Quantity < out[i].Quantity
			}
			return out[i].Quantity < out[j].Quantity
		})
		return out
	}

	if strings.Contains(strings.ToLower(field), "date") {
		sort.SliceStable(out, func(i, j int) bool {
			a := sortDate(fieldValue(out[i], field))
			b := sortDate(fieldValue(out[j], field))
			if desc {
				return b.Before(a)
			}
			return a.Before(b)
		})
		return out
	}

	coll := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		a := fieldValue(out[i], field)
		b := fieldValue(out[j], field)
		if desc {
			return coll.CompareString(b, a) < 0
		}
		return coll.CompareString(a, b) < 0
	})
	return out
}

// sortDate parses a wire-format date for ordering, mapping missing or
// unparseable values to the epoch so they sort first in ascending order.
func sortDate(s string) time.Time {
	d, ok := expiry.Parse(s)
	if !ok {
		return time.Unix(0, 0).UTC()
	}
	return d
}

func fieldValue(it model.Item, field string) string {
	switch field {
	case "category":
		return it.Category
	case "itemName":
		return it.ItemName
	case "brand":
		return it.Brand
	case "contentVolume":
		return it.ContentVolume
	case "lotNumber":
		return it.LotNumber
	case "dateReceived":
		return it.DateReceived
	case "expiryDate":
		return it.ExpiryDate
	case "dateOpened":
		return it.DateOpened
	case "status":
		return it.Status
	case "remarks":
		return it.Remarks
	default:
		return ""
	}
}

// ComputeAlerts tallies alert states across a collection in a single pass.
func ComputeAlerts(items []model.Item, today time.Time) Alerts {
	var a Alerts
	for _, it := range items {
		switch expiry.Classify(it.ExpiryDate, today).Code {
		case expiry.CodeExpired:
			a.Expired++
		case expiry.CodeWarning:
			a.ExpSoon++
		}
		if it.Status == model.StatusOutOfStock {
			a.OutOfStock++
		}
		if it.Quantity == 0 {
			a.ZeroQty++
		}
	}
	return a
}
