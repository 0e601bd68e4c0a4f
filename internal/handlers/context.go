package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vivahalink/vivaha-api/internal/authz"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func adminIDFromRequest(r *http.Request) (string, bool) {
	return authz.AdminIDFromRequest(r)
}
