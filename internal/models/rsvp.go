package models

import "time"

type RSVPStatus string

const (
	RSVPStatusYes   RSVPStatus = "yes"
	RSVPStatusNo    RSVPStatus = "no"
	RSVPStatusMaybe RSVPStatus = "maybe"
)

// RSVP is a guest attendance response. One response per (profile, phone);
// the storage layer enforces the uniqueness.
type RSVP struct {
	ID         string     `json:"id" db:"id"`
	ProfileID  string     `json:"profile_id" db:"profile_id"`
	GuestName  string     `json:"guest_name" db:"guest_name"`
	GuestPhone string     `json:"guest_phone" db:"guest_phone"`
	Status     RSVPStatus `json:"status" db:"status"`
	GuestCount int        `json:"guest_count" db:"guest_count"`
	Message    *string    `json:"message,omitempty" db:"message"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// RSVPStats aggregates responses for one profile. TotalGuestCount sums
// guest_count over confirmed responses only.
type RSVPStats struct {
	TotalRSVPs        int `json:"total_rsvps" db:"total_rsvps"`
	AttendingCount    int `json:"attending_count" db:"attending_count"`
	NotAttendingCount int `json:"not_attending_count" db:"not_attending_count"`
	MaybeCount        int `json:"maybe_count" db:"maybe_count"`
	TotalGuestCount   int `json:"total_guest_count" db:"total_guest_count"`
}
