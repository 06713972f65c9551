package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/northmed/reagent/internal/export"
	"github.com/northmed/reagent/internal/inventory"
)

// ExportHandler serves the current view as a downloadable CSV.
type ExportHandler struct {
	Service *inventory.Service
}

// Download handles GET /api/export. Filter/sort query parameters select the
// exported view, same as the items listing.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	applyViewParams(h.Service, r)

	if err := h.Service.Refresh(r.Context()); err != nil {
		slog.Error("failed to load items for export", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load items")
		return
	}

	filename, data, err := h.Service.ExportCSV()
	if err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			jsonError(w, http.StatusNotFound, "nothing to export")
			return
		}
		slog.Error("failed to export items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to export items")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
