package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/northmed/reagent/internal/inventory"
	"github.com/northmed/reagent/internal/model"
	"github.com/northmed/reagent/internal/query"
)

// ItemsHandler handles item CRUD and view endpoints.
type ItemsHandler struct {
	Service *inventory.Service
}

// applyViewParams updates the controller's filter/sort state from query
// parameters, so the view the client sees is the one it asked for.
func applyViewParams(s *inventory.Service, r *http.Request) {
	q := r.URL.Query()
	s.SetFilters(query.Filters{
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
		Expiry:   q.Get("expiry"),
		LowStock: q.Get("lowStock") == "true",
	})
	s.SetSort(q.Get("sort"), q.Get("dir"))
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	applyViewParams(h.Service, r)

	if err := h.Service.Refresh(r.Context()); err != nil {
		slog.Error("failed to load items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load items")
		return
	}

	items := h.Service.View()
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Payload
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.SubmitNew(r.Context(), p); err != nil {
		var verr model.ValidationError
		if errors.As(err, &verr) {
			jsonValidationError(w, verr)
			return
		}
		slog.Error("failed to create item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	jsonResponse(w, http.StatusCreated, h.Service.View())
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.Payload
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = r.PathValue("id")

	if err := h.Service.SubmitEdit(r.Context(), p); err != nil {
		var verr model.ValidationError
		if errors.As(err, &verr) {
			jsonValidationError(w, verr)
			return
		}
		slog.Error("failed to update item", "error", err, "id", p.ID)
		jsonError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	jsonResponse(w, http.StatusOK, h.Service.View())
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.Service.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete item", "error", err, "id", id)
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, h.Service.View())
}

// Alerts handles GET /api/alerts.
func (h *ItemsHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Service.Alerts())
}

// Vocabulary handles GET /api/vocabulary.
func (h *ItemsHandler) Vocabulary(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"categories": model.Categories,
		"itemNames":  model.ItemNames,
		"statuses":   []string{model.StatusUnopened, model.StatusOpened, model.StatusOutOfStock},
	})
}
