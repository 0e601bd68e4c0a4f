package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

type MediaHandler struct {
	media    repository.MediaRepository
	profiles repository.ProfileRepository
	logger   zerolog.Logger
}

type mediaPayload struct {
	MediaType string  `json:"media_type"`
	MediaURL  string  `json:"media_url"`
	Caption   *string `json:"caption"`
	Position  int     `json:"order"`
}

func NewMediaHandler(media repository.MediaRepository, profiles repository.ProfileRepository, logger zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		media:    media,
		profiles: profiles,
		logger:   logger.With().Str("handler", "media").Logger(),
	}
}

func (h *MediaHandler) Add(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	if _, err := h.profiles.GetByID(r.Context(), profileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to load profile")
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	var payload mediaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.MediaURL = strings.TrimSpace(payload.MediaURL)
	if payload.MediaURL == "" {
		writeError(w, http.StatusBadRequest, "media_url is required")
		return
	}
	switch payload.MediaType {
	case models.MediaTypePhoto, models.MediaTypeVideo:
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown media_type %q", payload.MediaType))
		return
	}

	created, err := h.media.Add(r.Context(), models.ProfileMedia{
		ProfileID: profileID,
		MediaType: payload.MediaType,
		MediaURL:  payload.MediaURL,
		Caption:   payload.Caption,
		Position:  payload.Position,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to add media")
		writeError(w, http.StatusInternalServerError, "failed to add media")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	items, err := h.media.ListByProfile(r.Context(), profileID)
	if err != nil {
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to list media")
		writeError(w, http.StatusInternalServerError, "failed to list media")
		return
	}
	if items == nil {
		items = []models.ProfileMedia{}
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mediaID := mux.Vars(r)["mediaID"]

	if err := h.media.Delete(r.Context(), mediaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "media not found")
			return
		}
		h.logger.Error().Err(err).Str("media_id", mediaID).Msg("failed to delete media")
		writeError(w, http.StatusInternalServerError, "failed to delete media")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
