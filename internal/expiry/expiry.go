// Package expiry computes and evaluates invitation link validity windows.
// All functions are pure, total, and UTC-normalized: malformed configuration
// is coerced to a safe default rather than rejected, because profile creation
// must never fail on an expiry field.
package expiry

import "time"

// Unit is the relative expiry unit stored on a profile.
type Unit string

const (
	UnitDays  Unit = "days"
	UnitHours Unit = "hours"
)

// DefaultDays is substituted whenever the configured value is missing or
// non-positive. Links created by omission expire after 30 days instead of
// staying open forever.
const DefaultDays = 30

// Config is the relative expiry configuration attached to a profile.
type Config struct {
	Unit  Unit `json:"unit"`
	Value int  `json:"value"`
}

// Normalize coerces an invalid configuration to the 30-day default. An
// unknown unit or a non-positive value both collapse to {days, 30}; a valid
// configuration passes through unchanged.
func Normalize(cfg Config) Config {
	if cfg.Unit != UnitDays && cfg.Unit != UnitHours {
		return Config{Unit: UnitDays, Value: DefaultDays}
	}
	if cfg.Value <= 0 {
		return Config{Unit: UnitDays, Value: DefaultDays}
	}
	return cfg
}

// ComputeExpiry returns the absolute expiry instant for a link created at
// createdAt with the given configuration. The result is always in UTC so it
// compares unambiguously against stored timestamps regardless of the zone
// the caller's clock reports.
func ComputeExpiry(createdAt time.Time, cfg Config) time.Time {
	cfg = Normalize(cfg)
	created := createdAt.UTC()
	switch cfg.Unit {
	case UnitHours:
		return created.Add(time.Duration(cfg.Value) * time.Hour)
	default:
		return created.AddDate(0, 0, cfg.Value)
	}
}

// IsActive reports whether a link is reachable at the given instant. The
// expiry instant itself is already excluded: a link expiring at midnight is
// gone at midnight exactly, not one second later.
func IsActive(now, expiryAt time.Time, active bool) bool {
	if !active {
		return false
	}
	return now.UTC().Before(expiryAt.UTC())
}

// Remaining returns the time left before expiryAt, clamped at zero.
func Remaining(now, expiryAt time.Time) time.Duration {
	d := expiryAt.UTC().Sub(now.UTC())
	if d < 0 {
		return 0
	}
	return d
}
