package handlers

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/content"
	"github.com/vivahalink/vivaha-api/internal/expiry"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/notification"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

const slugSuffixLen = 6

type ProfileHandler struct {
	repo          repository.ProfileRepository
	notifications notification.Service
	logger        zerolog.Logger
}

type profilePayload struct {
	GroomName        string                  `json:"groom_name"`
	BrideName        string                  `json:"bride_name"`
	EventType        string                  `json:"event_type"`
	EventDate        time.Time               `json:"event_date"`
	VenueName        string                  `json:"venue_name"`
	VenueAddress     string                  `json:"venue_address"`
	MapLink          string                  `json:"map_link"`
	WhatsappGroom    string                  `json:"whatsapp_groom"`
	WhatsappBride    string                  `json:"whatsapp_bride"`
	DesignID         string                  `json:"design_id"`
	DeityID          *string                 `json:"deity_id"`
	DefaultLanguage  string                  `json:"default_language"`
	EnabledLanguages []string                `json:"enabled_languages"`
	CustomText       content.Overrides       `json:"custom_text"`
	SectionsEnabled  *models.SectionsEnabled `json:"sections_enabled"`
	BackgroundMusic  models.BackgroundMusic  `json:"background_music"`
	Events           []models.SubEvent       `json:"events"`
	ExpiryUnit       string                  `json:"link_expiry_unit"`
	ExpiryValue      int                     `json:"link_expiry_value"`
	IsActive         *bool                   `json:"is_active"`
}

type profileResponse struct {
	models.Profile
	InvitationLink string `json:"invitation_link"`
	ExpiresIn      int64  `json:"expires_in_seconds"`
}

func NewProfileHandler(repo repository.ProfileRepository, notifications notification.Service, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		repo:          repo,
		notifications: notifications,
		logger:        logger.With().Str("handler", "profile").Logger(),
	}
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.applyDefaults()
	if msg := payload.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	slug, err := h.uniqueSlug(r.Context(), payload.GroomName, payload.BrideName)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to allocate slug")
		writeError(w, http.StatusInternalServerError, "failed to allocate invitation link")
		return
	}

	now := time.Now().UTC()
	cfg := expiry.Normalize(expiry.Config{Unit: expiry.Unit(payload.ExpiryUnit), Value: payload.ExpiryValue})

	profile := payload.toProfile()
	profile.Slug = slug
	profile.ExpiryUnit = cfg.Unit
	profile.ExpiryValue = cfg.Value
	profile.ExpiryAt = expiry.ComputeExpiry(now, cfg)
	profile.IsActive = true
	if payload.IsActive != nil {
		profile.IsActive = *payload.IsActive
	}

	created, err := h.repo.Create(r.Context(), profile)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create profile")
		writeError(w, http.StatusInternalServerError, "failed to create profile")
		return
	}

	if err := h.notifications.NotifyProfileCreated(r.Context(), created.ID, created.Slug, created.GroomName, created.BrideName); err != nil {
		h.logger.Warn().Err(err).Str("profile_id", created.ID).Msg("failed to publish profile notification")
	}

	writeJSON(w, http.StatusCreated, withLink(created))
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list profiles")
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}

	responses := make([]profileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, withLink(profile))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	profile, err := h.repo.GetByID(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to load profile")
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, withLink(profile))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	existing, err := h.repo.GetByID(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to load profile")
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.applyDefaults()
	if msg := payload.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	profile := payload.toProfile()
	profile.ID = existing.ID
	profile.Slug = existing.Slug
	profile.CreatedAt = existing.CreatedAt

	// Expiry is extended from the moment the config changes, not from the
	// original creation time.
	cfg := expiry.Normalize(expiry.Config{Unit: expiry.Unit(payload.ExpiryUnit), Value: payload.ExpiryValue})
	profile.ExpiryUnit = cfg.Unit
	profile.ExpiryValue = cfg.Value
	if cfg != existing.ExpiryConfig() {
		profile.ExpiryAt = expiry.ComputeExpiry(time.Now().UTC(), cfg)
	} else {
		profile.ExpiryAt = existing.ExpiryAt
	}

	profile.IsActive = existing.IsActive
	if payload.IsActive != nil {
		profile.IsActive = *payload.IsActive
	}

	updated, err := h.repo.Update(r.Context(), profile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to update profile")
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, withLink(updated))
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileID"]

	if err := h.repo.SoftDelete(r.Context(), profileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Error().Err(err).Str("profile_id", profileID).Msg("failed to delete profile")
		writeError(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (p *profilePayload) applyDefaults() {
	p.GroomName = strings.TrimSpace(p.GroomName)
	p.BrideName = strings.TrimSpace(p.BrideName)
	p.VenueName = strings.TrimSpace(p.VenueName)

	if p.EventType == "" {
		p.EventType = models.EventTypeMarriage
	}
	if p.DesignID == "" {
		p.DesignID = content.DefaultDesignID
	}
	if p.DefaultLanguage == "" {
		p.DefaultLanguage = content.DefaultLanguage
	}
	if len(p.EnabledLanguages) == 0 {
		p.EnabledLanguages = []string{p.DefaultLanguage}
	}
	if p.CustomText == nil {
		p.CustomText = content.Overrides{}
	}
	if p.Events == nil {
		p.Events = []models.SubEvent{}
	}
}

func (p *profilePayload) validate() string {
	if p.GroomName == "" {
		return "groom_name is required"
	}
	if p.BrideName == "" {
		return "bride_name is required"
	}
	if p.VenueName == "" {
		return "venue_name is required"
	}
	if p.EventDate.IsZero() {
		return "event_date is required"
	}
	switch p.EventType {
	case models.EventTypeMarriage, models.EventTypeEngagement, models.EventTypeBirthday:
	default:
		return fmt.Sprintf("unknown event_type %q", p.EventType)
	}
	if _, ok := content.DesignByID(p.DesignID); !ok {
		return fmt.Sprintf("unknown design_id %q", p.DesignID)
	}
	if p.DeityID != nil && *p.DeityID != "" {
		if _, ok := content.DeityByID(*p.DeityID); !ok {
			return fmt.Sprintf("unknown deity_id %q", *p.DeityID)
		}
	}
	if !content.KnownLanguage(p.DefaultLanguage) {
		return fmt.Sprintf("unknown default_language %q", p.DefaultLanguage)
	}
	for _, lang := range p.EnabledLanguages {
		if !content.KnownLanguage(lang) {
			return fmt.Sprintf("unknown language %q in enabled_languages", lang)
		}
	}
	return ""
}

func (p *profilePayload) toProfile() models.Profile {
	sections := models.DefaultSections()
	if p.SectionsEnabled != nil {
		sections = *p.SectionsEnabled
	}

	return models.Profile{
		GroomName:        p.GroomName,
		BrideName:        p.BrideName,
		EventType:        p.EventType,
		EventDate:        p.EventDate,
		VenueName:        p.VenueName,
		VenueAddress:     p.VenueAddress,
		MapLink:          p.MapLink,
		WhatsappGroom:    p.WhatsappGroom,
		WhatsappBride:    p.WhatsappBride,
		DesignID:         p.DesignID,
		DeityID:          p.DeityID,
		DefaultLanguage:  strings.ToLower(p.DefaultLanguage),
		EnabledLanguages: lowerAll(p.EnabledLanguages),
		CustomText:       p.CustomText,
		SectionsEnabled:  sections,
		BackgroundMusic:  p.BackgroundMusic,
		Events:           p.Events,
	}
}

func withLink(profile models.Profile) profileResponse {
	return profileResponse{
		Profile:        profile,
		InvitationLink: "/invite/" + profile.Slug,
		ExpiresIn:      int64(expiry.Remaining(time.Now(), profile.ExpiryAt).Seconds()),
	}
}

func lowerAll(values []string) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return result
}

// uniqueSlug derives the public link from the couple's first names plus a
// random suffix, retrying on the rare collision.
func (h *ProfileHandler) uniqueSlug(ctx context.Context, groomName, brideName string) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		slug, err := generateSlug(groomName, brideName)
		if err != nil {
			return "", err
		}
		exists, err := h.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
	}
	return "", fmt.Errorf("could not find a free slug after 10 attempts")
}

func generateSlug(groomName, brideName string) (string, error) {
	suffix, err := randomSlugSuffix(slugSuffixLen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", firstNameSegment(groomName), firstNameSegment(brideName), suffix), nil
}

// firstNameSegment keeps only ascii letters of the first name token. Names
// written in non-latin scripts fall back to a neutral segment.
func firstNameSegment(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "guest"
	}

	var b strings.Builder
	for _, r := range strings.ToLower(fields[0]) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "guest"
	}
	return b.String()
}

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSlugSuffix(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = slugAlphabet[int(b)%len(slugAlphabet)]
	}
	return string(buf), nil
}
