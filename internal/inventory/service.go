// Package inventory is the application controller: it owns the current item
// collection and the filter/sort state, and orchestrates the query engine,
// the persistence gateway and CSV export.
package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/northmed/reagent/internal/export"
	"github.com/northmed/reagent/internal/model"
	"github.com/northmed/reagent/internal/query"
	"github.com/northmed/reagent/internal/store"
)

// Service holds the last-loaded item collection and the current view state.
// The collection in memory mirrors the row-store: every mutation replaces it
// with the gateway's refreshed result, so the two cannot silently diverge.
// A mutex serializes access because HTTP handlers run concurrently; two
// rapid mutations still apply last-write-wins at the row level.
type Service struct {
	gw  *store.Gateway
	now func() time.Time

	mu      sync.Mutex
	items   []model.Item
	filters query.Filters
	sortBy  string
	sortDir string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service around the given gateway.
func New(gw *store.Gateway, opts ...Option) *Service {
	s := &Service{gw: gw, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh reloads the collection from the gateway. On failure the previous
// collection is kept so the caller still has the best-known data.
func (s *Service) Refresh(ctx context.Context) error {
	items, err := s.gw.Load(ctx)
	if err != nil {
		return fmt.Errorf("refreshing inventory: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the full last-loaded collection.
func (s *Service) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// SetFilters replaces the active filter criteria.
func (s *Service) SetFilters(f query.Filters) {
	s.mu.Lock()
	s.filters = f
	s.mu.Unlock()
}

// Filters returns the active filter criteria.
func (s *Service) Filters() query.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetSort replaces the active sort field and direction.
func (s *Service) SetSort(field, direction string) {
	s.mu.Lock()
	s.sortBy = field
	s.sortDir = direction
	s.mu.Unlock()
}

// Sort returns the active sort field and direction.
func (s *Service) Sort() (field, direction string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortBy, s.sortDir
}

// View returns the filtered and sorted projection of the collection. Filter
// before sort is the canonical pipeline, shared by rendering, alert
// computation and export.
func (s *Service) View() []model.Item {
	s.mu.Lock()
	items, filters := s.items, s.filters
	field, dir := s.sortBy, s.sortDir
	s.mu.Unlock()

	return query.Sort(query.Filter(items, filters, s.now()), field, dir)
}

// Alerts tallies expiry and stock alerts over the current view.
func (s *Service) Alerts() query.Alerts {
	return query.ComputeAlerts(s.View(), s.now())
}

// SubmitNew validates a new-item submission and persists it. On validation
// failure all rule violations are returned together and nothing is mutated.
func (s *Service) SubmitNew(ctx context.Context, p model.Payload) error {
	return s.submit(ctx, p)
}

// SubmitEdit validates an edited item and persists it as a full replacement
// of the row with the payload's id.
func (s *Service) SubmitEdit(ctx context.Context, p model.Payload) error {
	if p.ID == "" {
		return model.ValidationError{"Item id is required for edits"}
	}
	return s.submit(ctx, p)
}

func (s *Service) submit(ctx context.Context, p model.Payload) error {
	if errs := model.Validate(p); len(errs) > 0 {
		return errs
	}

	items, err := s.gw.Upsert(ctx, model.NewItem(p))
	if err != nil {
		return fmt.Errorf("saving item: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Delete removes the item with the given id and replaces the collection with
// the gateway's refreshed result.
func (s *Service) Delete(ctx context.Context, id string) error {
	items, err := s.gw.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// ExportCSV renders the current view as a CSV document and returns the
// download filename alongside it. Returns export.ErrNothingToExport when the
// view is empty.
func (s *Service) ExportCSV() (filename string, data []byte, err error) {
	now := s.now()
	data, err = export.CSV(s.View(), now)
	if err != nil {
		return "", nil, err
	}
	return export.Filename(now), data, nil
}
