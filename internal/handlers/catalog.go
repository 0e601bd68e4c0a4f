package handlers

import (
	"net/http"

	"github.com/vivahalink/vivaha-api/internal/content"
)

// CatalogHandler serves the static pick-lists the panel builds profiles from.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Designs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"designs": content.Designs()})
}

func (h *CatalogHandler) Deities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"deities": content.Deities()})
}

func (h *CatalogHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"languages": content.Languages()})
}
