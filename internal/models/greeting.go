package models

import "time"

type GreetingStatus string

const (
	GreetingStatusPending  GreetingStatus = "pending"
	GreetingStatusApproved GreetingStatus = "approved"
	GreetingStatusRejected GreetingStatus = "rejected"
)

// Greeting is a guest-submitted wish. It enters as pending and only admin
// moderation moves it to approved or rejected; the public page shows
// approved greetings only.
type Greeting struct {
	ID        string         `json:"id" db:"id"`
	ProfileID string         `json:"profile_id" db:"profile_id"`
	GuestName string         `json:"guest_name" db:"guest_name"`
	Message   string         `json:"message" db:"message"`
	Status    GreetingStatus `json:"status" db:"status"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
