package model

import (
	"strings"
	"testing"
)

func TestNewItemDefaults(t *testing.T) {
	item := NewItem(Payload{
		Category:   CategoryChemistry,
		ItemName:   "Glucose",
		ExpiryDate: "2030-01-01",
	})

	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.Status != StatusUnopened {
		t.Errorf("expected default status %q, got %q", StatusUnopened, item.Status)
	}
	if item.Quantity != 0 {
		t.Errorf("expected default quantity 0, got %d", item.Quantity)
	}
	if item.Brand != "" || item.ContentVolume != "" || item.LotNumber != "" || item.Remarks != "" {
		t.Error("expected optional text fields to default to empty strings")
	}
}

func TestNewItemKeepsExistingID(t *testing.T) {
	item := NewItem(Payload{ID: "fixed-id", ItemName: "Glucose", ExpiryDate: "2030-01-01"})
	if item.ID != "fixed-id" {
		t.Errorf("expected id to be preserved, got %q", item.ID)
	}
}

func TestNewItemParsesQuantity(t *testing.T) {
	item := NewItem(Payload{ItemName: "Glucose", ExpiryDate: "2030-01-01", Quantity: "7"})
	if item.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", item.Quantity)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestValidateAllMissing(t *testing.T) {
	errs := Validate(Payload{Category: "", ItemName: "", ExpiryDate: "", Quantity: "abc"})
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(errs), errs)
	}
	for _, e := range errs {
		if strings.Contains(e, "negative") {
			t.Errorf("unexpected negativity error for non-numeric quantity: %q", e)
		}
	}
}

func TestValidateNegativeQuantity(t *testing.T) {
	errs := Validate(Payload{
		Category:   CategoryChemistry,
		ItemName:   "Glucose",
		ExpiryDate: "2030-01-01",
		Quantity:   "-1",
	})
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "negative") {
		t.Errorf("expected negativity error, got %q", errs[0])
	}
}

func TestValidateEmptyQuantityOK(t *testing.T) {
	errs := Validate(Payload{
		Category:   CategoryChemistry,
		ItemName:   "Glucose",
		ExpiryDate: "2030-01-01",
	})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestVocabularyCoversAllCategories(t *testing.T) {
	for _, c := range Categories {
		if len(ItemNames[c]) == 0 {
			t.Errorf("category %q has no item names", c)
		}
	}
}
