package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

type RSVPHandler struct {
	rsvps  repository.RSVPRepository
	logger zerolog.Logger
}

func NewRSVPHandler(rsvps repository.RSVPRepository, logger zerolog.Logger) *RSVPHandler {
	return &RSVPHandler{
		rsvps:  rsvps,
		logger: logger.With().Str("handler", "rsvp").Logger(),
	}
}

func (h *RSVPHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	var status models.RSVPStatus
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status = models.RSVPStatus(raw)
		switch status {
		case models.RSVPStatusYes, models.RSVPStatusNo, models.RSVPStatusMaybe:
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown status %q", raw))
			return
		}
	}

	rsvps, err := h.rsvps.ListByProfile(r.Context(), profileID, status)
	if err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to list rsvps")
		writeError(w, http.StatusInternalServerError, "failed to list rsvps")
		return
	}
	if rsvps == nil {
		rsvps = []models.RSVP{}
	}

	writeJSON(w, http.StatusOK, rsvps)
}

func (h *RSVPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	stats, err := h.rsvps.Stats(r.Context(), profileID)
	if err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to load rsvp stats")
		writeError(w, http.StatusInternalServerError, "failed to load rsvp stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ExportCSV streams every response for the profile as a spreadsheet-friendly
// attachment.
func (h *RSVPHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	rsvps, err := h.rsvps.ListByProfile(r.Context(), profileID, "")
	if err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to export rsvps")
		writeError(w, http.StatusInternalServerError, "failed to export rsvps")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="rsvps.csv"`)

	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"guest_name", "guest_phone", "status", "guest_count", "message", "submitted_at"})
	for _, rsvp := range rsvps {
		message := ""
		if rsvp.Message != nil {
			message = *rsvp.Message
		}
		_ = writer.Write([]string{
			rsvp.GuestName,
			rsvp.GuestPhone,
			string(rsvp.Status),
			strconv.Itoa(rsvp.GuestCount),
			message,
			rsvp.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to write csv")
	}
}
