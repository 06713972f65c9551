package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/northmed/reagent/internal/model"
)

var today = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

func TestCSVEmptyView(t *testing.T) {
	_, err := CSV(nil, today)
	if !errors.Is(err, ErrNothingToExport) {
		t.Errorf("expected ErrNothingToExport, got %v", err)
	}
}

func TestCSVFormat(t *testing.T) {
	items := []model.Item{
		{
			Category:      model.CategoryChemistry,
			ItemName:      `Glucose "GOD-PAP"`,
			Brand:         "Randox",
			ContentVolume: "4x100ml",
			LotNumber:     "L-1",
			DateReceived:  "2026-01-05",
			ExpiryDate:    "2026-02-01",
			Status:        model.StatusOpened,
			Quantity:      3,
			Remarks:       "keep\nrefrigerated",
		},
	}

	data, err := CSV(items, today)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	got := string(data)

	lines := strings.Split(got, "\r\n")
	if len(lines) != 3 || lines[2] != "" {
		t.Fatalf("expected header + 1 record with CRLF endings, got %q", got)
	}

	wantHeader := `"Category","Item Name","Brand / Supplier","Content Volume","Lot Number","Date Received","Expiry Date","Date Opened","Status","Quantity Remaining","Remarks","Expiry Status"`
	if lines[0] != wantHeader {
		t.Errorf("header mismatch:\n got %s\nwant %s", lines[0], wantHeader)
	}

	wantRecord := `"Chemistry","Glucose ""GOD-PAP""","Randox","4x100ml","L-1","05/01/2026","01/02/2026","","Opened","3","keep refrigerated","Expired"`
	if lines[1] != wantRecord {
		t.Errorf("record mismatch:\n got %s\nwant %s", lines[1], wantRecord)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 45, 9, 0, time.UTC)
	want := "north-med-reagent-inventory-2026-08-28-13-45-09.csv"
	if got := Filename(now); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
