package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

type GreetingHandler struct {
	greetings repository.GreetingRepository
	logger    zerolog.Logger
}

func NewGreetingHandler(greetings repository.GreetingRepository, logger zerolog.Logger) *GreetingHandler {
	return &GreetingHandler{
		greetings: greetings,
		logger:    logger.With().Str("handler", "greeting").Logger(),
	}
}

func (h *GreetingHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	var status models.GreetingStatus
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status = models.GreetingStatus(raw)
		switch status {
		case models.GreetingStatusPending, models.GreetingStatusApproved, models.GreetingStatusRejected:
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown status %q", raw))
			return
		}
	}

	greetings, err := h.greetings.ListByProfile(r.Context(), profileID, status)
	if err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to list greetings")
		writeError(w, http.StatusInternalServerError, "failed to list greetings")
		return
	}
	if greetings == nil {
		greetings = []models.Greeting{}
	}

	writeJSON(w, http.StatusOK, greetings)
}

func (h *GreetingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, models.GreetingStatusApproved)
}

func (h *GreetingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, models.GreetingStatusRejected)
}

func (h *GreetingHandler) updateStatus(w http.ResponseWriter, r *http.Request, status models.GreetingStatus) {
	greetingID := mux.Vars(r)["greetingID"]

	greeting, err := h.greetings.UpdateStatus(r.Context(), greetingID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "greeting not found")
			return
		}
		h.logger.Error().Err(err).Str("greeting_id", greetingID).Msg("failed to update greeting")
		writeError(w, http.StatusInternalServerError, "failed to update greeting")
		return
	}

	writeJSON(w, http.StatusOK, greeting)
}

func (h *GreetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	greetingID := mux.Vars(r)["greetingID"]

	if err := h.greetings.Delete(r.Context(), greetingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "greeting not found")
			return
		}
		h.logger.Error().Err(err).Str("greeting_id", greetingID).Msg("failed to delete greeting")
		writeError(w, http.StatusInternalServerError, "failed to delete greeting")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
