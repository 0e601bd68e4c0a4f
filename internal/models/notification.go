package models

import (
	"encoding/json"
	"time"
)

type NotificationSeverity string

const (
	NotificationSeverityInfo    NotificationSeverity = "info"
	NotificationSeverityWarning NotificationSeverity = "warning"
	NotificationSeverityError   NotificationSeverity = "error"
)

type NotificationEvent string

const (
	NotificationEventGreetingReceived NotificationEvent = "greeting_received"
	NotificationEventRSVPReceived     NotificationEvent = "rsvp_received"
	NotificationEventProfileCreated   NotificationEvent = "profile_created"
)

// Notification is one entry of the admin activity feed. ProfileID is nil for
// platform-wide entries.
type Notification struct {
	ID        string               `json:"id" db:"id"`
	ProfileID *string              `json:"profile_id,omitempty" db:"profile_id"`
	EventType NotificationEvent    `json:"event_type" db:"event_type"`
	Severity  NotificationSeverity `json:"severity" db:"severity"`
	Title     string               `json:"title" db:"title"`
	Message   string               `json:"message" db:"message"`
	Metadata  json.RawMessage      `json:"metadata,omitempty" db:"metadata"`
	CreatedAt time.Time            `json:"created_at" db:"created_at"`
	ReadAt    *time.Time           `json:"read_at,omitempty" db:"read_at"`
}
