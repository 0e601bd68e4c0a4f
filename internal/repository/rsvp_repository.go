package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/vivahalink/vivaha-api/internal/models"
)

// ErrDuplicateRSVP surfaces the (profile, phone) uniqueness rule: one
// response per guest identity per invitation.
var ErrDuplicateRSVP = errors.New("rsvp already submitted for this invitation")

const uniqueViolation = "23505"

type RSVPRepository interface {
	Create(ctx context.Context, rsvp models.RSVP) (models.RSVP, error)
	ListByProfile(ctx context.Context, profileID string, status models.RSVPStatus) ([]models.RSVP, error)
	Stats(ctx context.Context, profileID string) (models.RSVPStats, error)
}

type rsvpRepository struct {
	db *sql.DB
}

func NewRSVPRepository(db *sql.DB) RSVPRepository {
	return &rsvpRepository{db: db}
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp models.RSVP) (models.RSVP, error) {
	const query = `
		INSERT INTO rsvps (profile_id, guest_name, guest_phone, status, guest_count, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	if rsvp.GuestCount <= 0 {
		rsvp.GuestCount = 1
	}

	var message interface{}
	if rsvp.Message != nil && *rsvp.Message != "" {
		message = *rsvp.Message
	}

	err := r.db.QueryRowContext(ctx, query,
		rsvp.ProfileID,
		rsvp.GuestName,
		rsvp.GuestPhone,
		string(rsvp.Status),
		rsvp.GuestCount,
		message,
	).Scan(&rsvp.ID, &rsvp.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.RSVP{}, ErrDuplicateRSVP
		}
		return models.RSVP{}, err
	}

	return rsvp, nil
}

// ListByProfile returns responses newest first, capped at 500. An empty
// status means every response.
func (r *rsvpRepository) ListByProfile(ctx context.Context, profileID string, status models.RSVPStatus) ([]models.RSVP, error) {
	query := `
		SELECT id, profile_id, guest_name, guest_phone, status, guest_count, message, created_at
		FROM rsvps
		WHERE profile_id = $1`
	args := []interface{}{profileID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC LIMIT 500`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rsvps []models.RSVP
	for rows.Next() {
		var (
			rsvp    models.RSVP
			message sql.NullString
		)
		if err := rows.Scan(
			&rsvp.ID,
			&rsvp.ProfileID,
			&rsvp.GuestName,
			&rsvp.GuestPhone,
			&rsvp.Status,
			&rsvp.GuestCount,
			&message,
			&rsvp.CreatedAt,
		); err != nil {
			return nil, err
		}
		if message.Valid {
			val := message.String
			rsvp.Message = &val
		}
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rsvps, nil
}

func (r *rsvpRepository) Stats(ctx context.Context, profileID string) (models.RSVPStats, error) {
	const query = `
		SELECT
			COUNT(*) AS total_rsvps,
			COUNT(*) FILTER (WHERE status = 'yes') AS attending_count,
			COUNT(*) FILTER (WHERE status = 'no') AS not_attending_count,
			COUNT(*) FILTER (WHERE status = 'maybe') AS maybe_count,
			COALESCE(SUM(guest_count) FILTER (WHERE status = 'yes'), 0) AS total_guest_count
		FROM rsvps
		WHERE profile_id = $1`

	var stats models.RSVPStats
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&stats.TotalRSVPs,
		&stats.AttendingCount,
		&stats.NotAttendingCount,
		&stats.MaybeCount,
		&stats.TotalGuestCount,
	)
	if err != nil {
		return models.RSVPStats{}, err
	}
	return stats, nil
}
