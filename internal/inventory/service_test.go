package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/northmed/reagent/internal/db"
	"github.com/northmed/reagent/internal/export"
	"github.com/northmed/reagent/internal/model"
	"github.com/northmed/reagent/internal/query"
	"github.com/northmed/reagent/internal/store"
)

var testNow = time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gw := store.NewGateway(db.NewTestDB(t))
	return New(gw, WithClock(func() time.Time { return testNow }))
}

func dateOffset(days int) string {
	return testNow.AddDate(0, 0, days).Format("2006-01-02")
}

func TestSubmitNewAndView(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	err := s.SubmitNew(ctx, model.Payload{
		Category:   model.CategoryChemistry,
		ItemName:   "Glucose",
		ExpiryDate: dateOffset(120),
		Quantity:   "5",
	})
	if err != nil {
		t.Fatalf("SubmitNew: %v", err)
	}

	view := s.View()
	if len(view) != 1 {
		t.Fatalf("expected 1 item in view, got %d", len(view))
	}
	if view[0].ItemName != "Glucose" || view[0].Quantity != 5 {
		t.Errorf("unexpected item: %+v", view[0])
	}
	if view[0].ID == "" {
		t.Error("expected generated id")
	}
}

func TestSubmitNewValidationFailureMutatesNothing(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	err := s.SubmitNew(ctx, model.Payload{Quantity: "abc"})
	var verr model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr) != 4 {
		t.Errorf("expected all 4 violations surfaced together, got %v", verr)
	}
	if len(s.Items()) != 0 {
		t.Error("expected no mutation on validation failure")
	}
}

func TestSubmitEditRequiresID(t *testing.T) {
	s := newTestService(t)

	err := s.SubmitEdit(context.Background(), model.Payload{
		Category:   model.CategoryChemistry,
		ItemName:   "Glucose",
		ExpiryDate: dateOffset(10),
	})
	var verr model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for missing id, got %v", err)
	}
}

func TestSubmitEditReplacesItem(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if err := s.SubmitNew(ctx, model.Payload{
		ID:         "fixed",
		Category:   model.CategoryChemistry,
		ItemName:   "Glucose",
		ExpiryDate: dateOffset(30),
		Quantity:   "2",
	}); err != nil {
		t.Fatalf("SubmitNew: %v", err)
	}

	if err := s.SubmitEdit(ctx, model.Payload{
		ID:         "fixed",
		Category:   model.CategoryChemistry,
		ItemName:   "Glucose",
		ExpiryDate: dateOffset(30),
		Quantity:   "8",
		Status:     model.StatusOpened,
	}); err != nil {
		t.Fatalf("SubmitEdit: %v", err)
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected full replacement, got %d items", len(items))
	}
	if items[0].Quantity != 8 || items[0].Status != model.StatusOpened {
		t.Errorf("expected edited fields, got %+v", items[0])
	}
}

func TestDelete(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	s.SubmitNew(ctx, model.Payload{
		ID: "doomed", Category: model.CategoryChemistry,
		ItemName: "Glucose", ExpiryDate: dateOffset(30),
	})
	if err := s.Delete(ctx, "doomed"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(s.Items()) != 0 {
		t.Error("expected empty collection after delete")
	}
}

func TestViewAppliesFilterThenSort(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for _, p := range []model.Payload{
		{ID: "a", Category: model.CategoryChemistry, ItemName: "Glucose", ExpiryDate: dateOffset(30), Quantity: "3"},
		{ID: "b", Category: model.CategoryHematology, ItemName: "Lyse Reagent", ExpiryDate: dateOffset(40), Quantity: "1"},
		{ID: "c", Category: model.CategoryChemistry, ItemName: "Albumin", ExpiryDate: dateOffset(50), Quantity: "1"},
	} {
		if err := s.SubmitNew(ctx, p); err != nil {
			t.Fatalf("SubmitNew %s: %v", p.ID, err)
		}
	}

	s.SetFilters(query.Filters{Category: model.CategoryChemistry})
	s.SetSort("itemName", query.Ascending)

	view := s.View()
	if len(view) != 2 || view[0].ID != "c" || view[1].ID != "a" {
		t.Errorf("expected filtered+sorted view [c a], got %+v", view)
	}
}

func TestAlertsOverView(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	s.SubmitNew(ctx, model.Payload{ID: "x", Category: model.CategoryChemistry, ItemName: "Glucose", ExpiryDate: dateOffset(-1)})
	s.SubmitNew(ctx, model.Payload{ID: "y", Category: model.CategoryHematology, ItemName: "Lyse Reagent", ExpiryDate: dateOffset(200), Quantity: "5"})

	a := s.Alerts()
	if a.Expired != 1 || a.ZeroQty != 1 {
		t.Errorf("unexpected alerts: %+v", a)
	}

	// Alerts follow the filtered view.
	s.SetFilters(query.Filters{Category: model.CategoryHematology})
	a = s.Alerts()
	if a.Expired != 0 || a.ZeroQty != 0 {
		t.Errorf("expected filter-scoped alerts, got %+v", a)
	}
}

func TestExportEmptyView(t *testing.T) {
	s := newTestService(t)

	_, _, err := s.ExportCSV()
	if !errors.Is(err, export.ErrNothingToExport) {
		t.Errorf("expected ErrNothingToExport, got %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	s.SubmitNew(ctx, model.Payload{
		ID: "e", Category: model.CategoryChemistry,
		ItemName: "Glucose", ExpiryDate: dateOffset(10), Quantity: "2",
	})

	filename, data, err := s.ExportCSV()
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if !strings.HasPrefix(filename, "north-med-reagent-inventory-") || !strings.HasSuffix(filename, ".csv") {
		t.Errorf("unexpected filename %q", filename)
	}
	if !strings.Contains(string(data), `"Glucose"`) {
		t.Errorf("expected item in export, got %q", string(data))
	}
}

func TestRefreshKeepsCollectionInSync(t *testing.T) {
	gw := store.NewGateway(db.NewTestDB(t))
	s := New(gw, WithClock(func() time.Time { return testNow }))
	ctx := context.Background()

	// Another client writes directly through the gateway.
	if _, err := gw.Upsert(ctx, model.Item{
		ID: "other", ItemName: "Glucose", ExpiryDate: dateOffset(15),
		Status: model.StatusUnopened,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := s.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(s.Items()) != 1 {
		t.Error("expected refresh to pick up external write")
	}
}
