package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

type AnalyticsHandler struct {
	analytics repository.AnalyticsRepository
	logger    zerolog.Logger
}

func NewAnalyticsHandler(analytics repository.AnalyticsRepository, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		logger:    logger.With().Str("handler", "analytics").Logger(),
	}
}

// Report serves the dashboard aggregate for one profile. The range query
// selects the trailing window: 7d, 30d, or all.
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	days := 30
	switch rng := strings.TrimSpace(r.URL.Query().Get("range")); rng {
	case "", "30d":
	case "7d":
		days = 7
	case "all":
		days = 0
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown range %q, expected 7d, 30d or all", rng))
		return
	}

	report, err := h.analytics.Report(r.Context(), profileID, days)
	if err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to build analytics report")
		writeError(w, http.StatusInternalServerError, "failed to build analytics report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	summary, err := h.analytics.Summary(r.Context(), profileID)
	if err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to load analytics summary")
		writeError(w, http.StatusInternalServerError, "failed to load analytics summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
