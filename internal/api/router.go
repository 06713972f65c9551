package api

import (
	"net/http"

	"github.com/northmed/reagent/internal/inventory"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(service *inventory.Service) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Service: service}
	exportHandler := &ExportHandler{Service: service}

	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)

	mux.HandleFunc("GET /api/alerts", itemsHandler.Alerts)
	mux.HandleFunc("GET /api/vocabulary", itemsHandler.Vocabulary)
	mux.HandleFunc("GET /api/export", exportHandler.Download)

	return mux
}
