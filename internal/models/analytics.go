package models

import "time"

// Device types a view can be tracked from.
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
	DeviceTablet  = "tablet"
)

// Interaction kinds the public page reports.
const (
	InteractionMapClick   = "map_click"
	InteractionRSVPClick  = "rsvp_click"
	InteractionMusicPlay  = "music_play"
	InteractionMusicPause = "music_pause"
)

// ViewStatDay holds the view count for a single day.
type ViewStatDay struct {
	Day   time.Time `json:"day" db:"day"`
	Views int       `json:"views" db:"views"`
}

// AnalyticsSummary is the lightweight per-profile counter set shown on the
// panel's profile list.
type AnalyticsSummary struct {
	TotalViews   int        `json:"total_views" db:"total_views"`
	MobileViews  int        `json:"mobile_views" db:"mobile_views"`
	DesktopViews int        `json:"desktop_views" db:"desktop_views"`
	TabletViews  int        `json:"tablet_views" db:"tablet_views"`
	LastViewedAt *time.Time `json:"last_viewed_at" db:"last_viewed_at"`
}

// AnalyticsReport is the full dashboard payload: the summary over the
// selected range, per-interaction counters, and a zero-filled per-day
// series.
type AnalyticsReport struct {
	AnalyticsSummary

	ProfileID      string         `json:"profile_id"`
	UniqueSessions int            `json:"unique_sessions" db:"unique_sessions"`
	Interactions   map[string]int `json:"interactions"`
	ViewsByDay     []ViewStatDay  `json:"views_by_day"`
}
