package models

import (
	"time"

	"github.com/vivahalink/vivaha-api/internal/content"
	"github.com/vivahalink/vivaha-api/internal/expiry"
)

// Profile is one configured invitation instance. The slug is the public
// identity of the link and never changes once assigned; expiry_at is always
// derived from the expiry config, never stored independently of it.
type Profile struct {
	ID               string            `json:"id" db:"id"`
	Slug             string            `json:"slug" db:"slug"`
	GroomName        string            `json:"groom_name" db:"groom_name"`
	BrideName        string            `json:"bride_name" db:"bride_name"`
	EventType        string            `json:"event_type" db:"event_type"`
	EventDate        time.Time         `json:"event_date" db:"event_date"`
	VenueName        string            `json:"venue_name" db:"venue_name"`
	VenueAddress     string            `json:"venue_address" db:"venue_address"`
	MapLink          string            `json:"map_link" db:"map_link"`
	WhatsappGroom    string            `json:"whatsapp_groom" db:"whatsapp_groom"`
	WhatsappBride    string            `json:"whatsapp_bride" db:"whatsapp_bride"`
	DesignID         string            `json:"design_id" db:"design_id"`
	DeityID          *string           `json:"deity_id" db:"deity_id"`
	DefaultLanguage  string            `json:"default_language" db:"default_language"`
	EnabledLanguages []string          `json:"enabled_languages" db:"enabled_languages"`
	CustomText       content.Overrides `json:"custom_text" db:"custom_text"`
	SectionsEnabled  SectionsEnabled   `json:"sections_enabled" db:"sections_enabled"`
	BackgroundMusic  BackgroundMusic   `json:"background_music" db:"background_music"`
	Events           []SubEvent        `json:"events" db:"events"`
	ExpiryUnit       expiry.Unit       `json:"link_expiry_unit" db:"expiry_unit"`
	ExpiryValue      int               `json:"link_expiry_value" db:"expiry_value"`
	ExpiryAt         time.Time         `json:"link_expiry_at" db:"expiry_at"`
	IsActive         bool              `json:"is_active" db:"is_active"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

// ExpiryConfig returns the profile's relative expiry configuration.
func (p Profile) ExpiryConfig() expiry.Config {
	return expiry.Config{Unit: p.ExpiryUnit, Value: p.ExpiryValue}
}

// IsReachable reports whether the public link serves at the given instant.
func (p Profile) IsReachable(now time.Time) bool {
	return expiry.IsActive(now, p.ExpiryAt, p.IsActive)
}

// SectionsEnabled toggles the visibility of each page section.
type SectionsEnabled struct {
	Opening   bool `json:"opening"`
	Welcome   bool `json:"welcome"`
	Couple    bool `json:"couple"`
	Photos    bool `json:"photos"`
	Video     bool `json:"video"`
	Events    bool `json:"events"`
	Greetings bool `json:"greetings"`
	RSVP      bool `json:"rsvp"`
	Footer    bool `json:"footer"`
}

/// DefaultSections enables every page section except the video block.
func DefaultSections() SectionsEnabled {
	return SectionsEnabled{
		Opening:   true,
		Welcome:   true,
		Couple:    true,
		Photos:    true,
		Video:     false,
		Events:    true,
		Greetings: true,
		RSVP:      true,
		Footer:    true,
	}
}

// Enabled reports whether a section name is switched on. Unknown names are
// off rather than an error.
func (s SectionsEnabled) Enabled(section string) bool {
	switch section {
	case "opening":
		return s.Opening
	case "welcome":
		return s.Welcome
	case "couple":
		return s.Couple
	case "photos":
		return s.Photos
	case "video":
		return s.Video
	case "events":
		return s.Events
	case "greetings":
		return s.Greetings
	case "rsvp":
		return s.RSVP
	case "footer":
		return s.Footer
	}
	return false
}

// BackgroundMusic is the optional audio track on the public page.
type BackgroundMusic struct {
	Enabled bool   `json:"enabled"`
	FileURL string `json:"file_url,omitempty"`
}

// SubEvent is one ceremony within the invitation (haldi, sangeet, muhurtham
// and so on). Hidden sub-events stay stored but never reach the public
// payload.
type SubEvent struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Venue       string `json:"venue"`
	Description string `json:"description,omitempty"`
	Visible     bool   `json:"visible"`
	Order       int    `json:"order"`
}

// ProfileMedia is one entry of the profile's ordered gallery.
type ProfileMedia struct {
	ID        string    `json:"id" db:"id"`
	ProfileID string    `json:"profile_id" db:"profile_id"`
	MediaType string    `json:"media_type" db:"media_type"`
	MediaURL  string    `json:"media_url" db:"media_url"`
	Caption   *string   `json:"caption,omitempty" db:"caption"`
	Position  int       `json:"order" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// Event types a profile can be created for.
const (
	EventTypeMarriage   = "marriage"
	EventTypeEngagement = "engagement"
	EventTypeBirthday   = "birthday"
)
