package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/vivahalink/vivaha-api/internal/content"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/notification"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

const (
	expiredLinkMessage  = "This invitation link has expired"
	duplicateRSVPErrMsg = "You have already submitted an RSVP for this invitation"

	maxGreetingRunes = 500
	maxGreetingEmoji = 10

	approvedGreetingLimit = 20
)

// E.164: plus sign, then 8 to 15 digits with no leading zero.
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

type InvitationHandler struct {
	profiles      repository.ProfileRepository
	media         repository.MediaRepository
	greetings     repository.GreetingRepository
	rsvps         repository.RSVPRepository
	analytics     repository.AnalyticsRepository
	notifications notification.Service
	publicBaseURL string
	logger        zerolog.Logger
}

type invitationResponse struct {
	Slug             string                       `json:"slug"`
	GroomName        string                       `json:"groom_name"`
	BrideName        string                       `json:"bride_name"`
	EventType        string                       `json:"event_type"`
	EventDate        time.Time                    `json:"event_date"`
	VenueName        string                       `json:"venue_name"`
	VenueAddress     string                       `json:"venue_address"`
	MapLink          string                       `json:"map_link"`
	WhatsappGroom    string                       `json:"whatsapp_groom"`
	WhatsappBride    string                       `json:"whatsapp_bride"`
	DesignID         string                       `json:"design_id"`
	DeityID          *string                      `json:"deity_id"`
	DefaultLanguage  string                       `json:"default_language"`
	EnabledLanguages []string                     `json:"enabled_languages"`
	LanguageUsed     string                       `json:"language_used"`
	SectionsEnabled  models.SectionsEnabled       `json:"sections_enabled"`
	BackgroundMusic  models.BackgroundMusic       `json:"background_music"`
	Text             map[string]map[string]string `json:"text"`
	Events           []models.SubEvent            `json:"events"`
	Media            []models.ProfileMedia        `json:"media"`
	Greetings        []models.Greeting            `json:"greetings"`
}

func NewInvitationHandler(
	profiles repository.ProfileRepository,
	media repository.MediaRepository,
	greetings repository.GreetingRepository,
	rsvps repository.RSVPRepository,
	analytics repository.AnalyticsRepository,
	notifications notification.Service,
	publicBaseURL string,
	logger zerolog.Logger,
) *InvitationHandler {
	return &InvitationHandler{
		profiles:      profiles,
		media:         media,
		greetings:     greetings,
		rsvps:         rsvps,
		analytics:     analytics,
		notifications: notifications,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger.With().Str("handler", "invitation").Logger(),
	}
}

// loadActiveProfile resolves the slug and applies the reachability gate:
// unknown slugs are 404, deactivated or expired links are 410 with the
// message guests see on the public page. The bool reports whether the
// caller may proceed.
func (h *InvitationHandler) loadActiveProfile(w http.ResponseWriter, r *http.Request) (models.Profile, bool) {
	slug := mux.Vars(r)["slug"]

	profile, err := h.profiles.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Invitation not found")
			return models.Profile{}, false
		}
		h.logger.Error().Err(err).Str("slug", slug).Msg("failed to load invitation")
		writeError(w, http.StatusInternalServerError, "failed to load invitation")
		return models.Profile{}, false
	}

	if !profile.IsReachable(time.Now()) {
		writeError(w, http.StatusGone, expiredLinkMessage)
		return models.Profile{}, false
	}

	return profile, true
}

func (h *InvitationHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadActiveProfile(w, r)
	if !ok {
		return
	}

	lang := content.NegotiateLanguage(
		r.URL.Query().Get("lang"),
		r.Header.Get("Accept-Language"),
		profile.DefaultLanguage,
		profile.EnabledLanguages,
	)

	text := make(map[string]map[string]string)
	for _, section := range content.Sections() {
		if !profile.SectionsEnabled.Enabled(section) {
			continue
		}
		text[section] = content.ResolveSection(lang, section, profile.CustomText)
	}

	media, err := h.media.ListByProfile(r.Context(), profile.ID)
	if err != nil {
		h.logger.Error().Err(err).Str("slug", profile.Slug).Msg("failed to load media")
		writeError(w, http.StatusInternalServerError, "failed to load invitation")
		return
	}
	if media == nil {
		media = []models.ProfileMedia{}
	}

	greetings, err := h.greetings.ListApproved(r.Context(), profile.ID, approvedGreetingLimit)
	if err != nil {
		h.logger.Error().Err(err).Str("slug", profile.Slug).Msg("failed to load greetings")
		writeError(w, http.StatusInternalServerError, "failed to load invitation")
		return
	}
	if greetings == nil {
		greetings = []models.Greeting{}
	}

	writeJSON(w, http.StatusOK, invitationResponse{
		Slug:             profile.Slug,
		GroomName:        profile.GroomName,
		BrideName:        profile.BrideName,
		EventType:        profile.EventType,
		EventDate:        profile.EventDate,
		VenueName:        profile.VenueName,
		VenueAddress:     profile.VenueAddress,
		MapLink:          profile.MapLink,
		WhatsappGroom:    profile.WhatsappGroom,
		WhatsappBride:    profile.WhatsappBride,
		DesignID:         profile.DesignID,
		DeityID:          profile.DeityID,
		DefaultLanguage:  profile.DefaultLanguage,
		EnabledLanguages: profile.EnabledLanguages,
		LanguageUsed:     lang,
		SectionsEnabled:  profile.SectionsEnabled,
		BackgroundMusic:  profile.BackgroundMusic,
		Text:             text,
		Events:           visibleEvents(profile.Events),
		Media:            media,
		Greetings:        greetings,
	})
}

func (h *InvitationHandler) SubmitGreeting(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadActiveProfile(w, r)
	if !ok {
		return
	}

	var payload struct {
		GuestName string `json:"guest_name"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.GuestName = strings.TrimSpace(payload.GuestName)
	payload.Message = strings.TrimSpace(payload.Message)

	if payload.GuestName == "" {
		writeError(w, http.StatusBadRequest, "guest_name is required")
		return
	}
	if payload.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if utf8.RuneCountInString(payload.Message) > maxGreetingRunes {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("message must be at most %d characters", maxGreetingRunes))
		return
	}
	if countEmoji(payload.Message) > maxGreetingEmoji {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("message can contain at most %d emoji", maxGreetingEmoji))
		return
	}

	greeting, err := h.greetings.Create(r.Context(), models.Greeting{
		ProfileID: profile.ID,
		GuestName: payload.GuestName,
		Message:   payload.Message,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("slug", profile.Slug).Msg("failed to store greeting")
		writeError(w, http.StatusInternalServerError, "failed to submit greeting")
		return
	}

	if err := h.notifications.NotifyGreetingReceived(r.Context(), profile.ID, profile.Slug, greeting.GuestName); err != nil {
		h.logger.Warn().Err(err).Str("slug", profile.Slug).Msg("failed to publish greeting notification")
	}

	writeJSON(w, http.StatusCreated, greeting)
}

func (h *InvitationHandler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadActiveProfile(w, r)
	if !ok {
		return
	}

	var payload struct {
		GuestName  string  `json:"guest_name"`
		GuestPhone string  `json:"guest_phone"`
		Status     string  `json:"status"`
		GuestCount int     `json:"guest_count"`
		Message    *string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.GuestName = strings.TrimSpace(payload.GuestName)
	payload.GuestPhone = strings.TrimSpace(payload.GuestPhone)

	if payload.GuestName == "" {
		writeError(w, http.StatusBadRequest, "guest_name is required")
		return
	}
	if !phonePattern.MatchString(payload.GuestPhone) {
		writeError(w, http.StatusBadRequest, "guest_phone must be a valid E.164 phone number")
		return
	}
	status := models.RSVPStatus(payload.Status)
	switch status {
	case models.RSVPStatusYes, models.RSVPStatusNo, models.RSVPStatusMaybe:
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("status must be yes, no or maybe, got %q", payload.Status))
		return
	}

	rsvp, err := h.rsvps.Create(r.Context(), models.RSVP{
		ProfileID:  profile.ID,
		GuestName:  payload.GuestName,
		GuestPhone: payload.GuestPhone,
		Status:     status,
		GuestCount: payload.GuestCount,
		Message:    payload.Message,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRSVP) {
			writeError(w, http.StatusBadRequest, duplicateRSVPErrMsg)
			return
		}
		h.logger.Error().Err(err).Str("slug", profile.Slug).Msg("failed to store rsvp")
		writeError(w, http.StatusInternalServerError, "failed to submit rsvp")
		return
	}

	if err := h.notifications.NotifyRSVPReceived(r.Context(), profile.ID, profile.Slug, rsvp.GuestName, string(rsvp.Status), rsvp.GuestCount); err != nil {
		h.logger.Warn().Err(err).Str("slug", profile.Slug).Msg("failed to publish rsvp notification")
	}

	writeJSON(w, http.StatusCreated, rsvp)
}

// TrackView counts one page view. Repeat views from the same session within
// 24 hours are absorbed silently; the guest always gets 204.
func (h *InvitationHandler) TrackView(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	profile, err := h.profiles.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Invitation not found")
			return
		}
		h.logger.Error().Err(err).Str("slug", slug).Msg("failed to load invitation")
		writeError(w, http.StatusInternalServerError, "failed to track view")
		return
	}

	var payload struct {
		DeviceType string `json:"device_type"`
		SessionID  string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	switch payload.DeviceType {
	case models.DeviceMobile, models.DeviceDesktop, models.DeviceTablet:
	default:
		writeError(w, http.StatusBadRequest, "device_type must be mobile, desktop or tablet")
		return
	}

	if _, err := h.analytics.RecordView(r.Context(), profile.ID, strings.TrimSpace(payload.SessionID), payload.DeviceType); err != nil {
		h.logger.Error().Err(err).Str("slug", slug).Msg("failed to record view")
		writeError(w, http.StatusInternalServerError, "failed to track view")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *InvitationHandler) TrackInteraction(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	profile, err := h.profiles.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Invitation not found")
			return
		}
		h.logger.Error().Err(err).Str("slug", slug).Msg("failed to load invitation")
		writeError(w, http.StatusInternalServerError, "failed to track interaction")
		return
	}

	var payload struct {
		InteractionType string `json:"interaction_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	switch payload.InteractionType {
	case models.InteractionMapClick, models.InteractionRSVPClick,
		models.InteractionMusicPlay, models.InteractionMusicPause:
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown interaction_type %q", payload.InteractionType))
		return
	}

	if err := h.analytics.RecordInteraction(r.Context(), profile.ID, payload.InteractionType); err != nil {
		h.logger.Error().Err(err).Str("slug", slug).Msg("failed to record interaction")
		writeError(w, http.StatusInternalServerError, "failed to track interaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// QRCode renders the shareable QR image pointing at the public link.
func (h *InvitationHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadActiveProfile(w, r)
	if !ok {
		return
	}

	size := 256
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = parsed
		}
	}
	if size < 64 {
		size = 64
	}
	if size > 1024 {
		size = 1024
	}

	url := h.publicBaseURL + "/invite/" + profile.Slug
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		h.logger.Error().Err(err).Str("slug", profile.Slug).Msg("failed to render qr code")
		writeError(w, http.StatusInternalServerError, "failed to render qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}

// Calendar serves an ICS file with the main ceremony and every visible
// sub-event, so guests can add the schedule in one tap.
func (h *InvitationHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadActiveProfile(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="invitation.ics"`)
	_, _ = w.Write([]byte(buildCalendar(profile)))
}

func visibleEvents(events []models.SubEvent) []models.SubEvent {
	visible := make([]models.SubEvent, 0, len(events))
	for _, event := range events {
		if event.Visible {
			visible = append(visible, event)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})
	return visible
}

// Emoji ranges: regional indicators, the main pictographic planes, and the
// misc symbols/dingbats block.
func countEmoji(s string) int {
	count := 0
	for _, r := range s {
		switch {
		case r >= 0x1F1E6 && r <= 0x1F1FF,
			r >= 0x1F300 && r <= 0x1FAFF,
			r >= 0x2600 && r <= 0x27BF:
			count++
		}
	}
	return count
}

func buildCalendar(profile models.Profile) string {
	var b strings.Builder

	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	eventLabel := "Wedding"
	switch profile.EventType {
	case models.EventTypeEngagement:
		eventLabel = "Engagement"
	case models.EventTypeBirthday:
		eventLabel = "Birthday"
	}
	couple := profile.GroomName + " & " + profile.BrideName

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//VivahaLink//Invitation//EN")
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")

	line("BEGIN:VEVENT")
	line("UID:" + profile.Slug + "@vivahalink")
	line("DTSTAMP:" + time.Now().UTC().Format("20060102T150405Z"))
	line("DTSTART:" + profile.EventDate.UTC().Format("20060102T150405Z"))
	line("SUMMARY:" + icsEscape(couple+" - "+eventLabel))
	if location := icsLocation(profile.VenueName, profile.VenueAddress); location != "" {
		line("LOCATION:" + location)
	}
	line("END:VEVENT")

	for i, event := range visibleEvents(profile.Events) {
		start, allDay, ok := parseSubEventStart(event)
		if !ok {
			continue
		}
		line("BEGIN:VEVENT")
		line(fmt.Sprintf("UID:%s-%d@vivahalink", profile.Slug, i))
		line("DTSTAMP:" + time.Now().UTC().Format("20060102T150405Z"))
		if allDay {
			line("DTSTART;VALUE=DATE:" + start.Format("20060102"))
		} else {
			line("DTSTART:" + start.Format("20060102T150405"))
			if end, ok := parseSubEventEnd(event); ok && end.After(start) {
				line("DTEND:" + end.Format("20060102T150405"))
			}
		}
		line("SUMMARY:" + icsEscape(event.Name))
		if location := icsLocation(event.Venue, ""); location != "" {
			line("LOCATION:" + location)
		}
		if event.Description != "" {
			line("DESCRIPTION:" + icsEscape(event.Description))
		}
		line("END:VEVENT")
	}

	line("END:VCALENDAR")
	return b.String()
}

// parseSubEventStart accepts the panel's date and time strings. A missing or
// unparseable time degrades to an all-day entry; an unparseable date drops
// the entry.
func parseSubEventStart(event models.SubEvent) (time.Time, bool, bool) {
	day, err := time.Parse("2006-01-02", strings.TrimSpace(event.Date))
	if err != nil {
		return time.Time{}, false, false
	}
	start, err := time.Parse("15:04", strings.TrimSpace(event.StartTime))
	if err != nil {
		return day, true, true
	}
	return day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute), false, true
}

func parseSubEventEnd(event models.SubEvent) (time.Time, bool) {
	day, err := time.Parse("2006-01-02", strings.TrimSpace(event.Date))
	if err != nil {
		return time.Time{}, false
	}
	end, err := time.Parse("15:04", strings.TrimSpace(event.EndTime))
	if err != nil {
		return time.Time{}, false
	}
	return day.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute), true
}

func icsLocation(name, address string) string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(name) != "" {
		parts = append(parts, strings.TrimSpace(name))
	}
	if strings.TrimSpace(address) != "" {
		parts = append(parts, strings.TrimSpace(address))
	}
	return icsEscape(strings.Join(parts, ", "))
}

func icsEscape(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
		"\r", "",
	)
	return replacer.Replace(s)
}
