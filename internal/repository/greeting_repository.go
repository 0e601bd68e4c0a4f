package repository

import (
	"context"
	"database/sql"

	"github.com/vivahalink/vivaha-api/internal/models"
)

type GreetingRepository interface {
	Create(ctx context.Context, greeting models.Greeting) (models.Greeting, error)
	ListByProfile(ctx context.Context, profileID string, status models.GreetingStatus) ([]models.Greeting, error)
	ListApproved(ctx context.Context, profileID string, limit int) ([]models.Greeting, error)
	UpdateStatus(ctx context.Context, greetingID string, status models.GreetingStatus) (models.Greeting, error)
	Delete(ctx context.Context, greetingID string) error
}

type greetingRepository struct {
	db *sql.DB
}

func NewGreetingRepository(db *sql.DB) GreetingRepository {
	return &greetingRepository{db: db}
}

func (r *greetingRepository) Create(ctx context.Context, greeting models.Greeting) (models.Greeting, error) {
	const query = `
		INSERT INTO greetings (profile_id, guest_name, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	if greeting.Status == "" {
		greeting.Status = models.GreetingStatusPending
	}

	err := r.db.QueryRowContext(ctx, query,
		greeting.ProfileID,
		greeting.GuestName,
		greeting.Message,
		string(greeting.Status),
	).Scan(&greeting.ID, &greeting.CreatedAt)
	if err != nil {
		return models.Greeting{}, err
	}

	return greeting, nil
}

// ListByProfile returns greetings newest first. An empty status means all
// moderation states.
func (r *greetingRepository) ListByProfile(ctx context.Context, profileID string, status models.GreetingStatus) ([]models.Greeting, error) {
	query := `
		SELECT id, profile_id, guest_name, message, status, created_at
		FROM greetings
		WHERE profile_id = $1`
	args := []interface{}{profileID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGreetings(rows)
}

func (r *greetingRepository) ListApproved(ctx context.Context, profileID string, limit int) ([]models.Greeting, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	const query = `
		SELECT id, profile_id, guest_name, message, status, created_at
		FROM greetings
		WHERE profile_id = $1 AND status = 'approved'
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGreetings(rows)
}

func (r *greetingRepository) UpdateStatus(ctx context.Context, greetingID string, status models.GreetingStatus) (models.Greeting, error) {
	const query = `
		UPDATE greetings
		SET status = $2
		WHERE id = $1
		RETURNING id, profile_id, guest_name, message, status, created_at`

	var greeting models.Greeting
	err := r.db.QueryRowContext(ctx, query, greetingID, string(status)).Scan(
		&greeting.ID,
		&greeting.ProfileID,
		&greeting.GuestName,
		&greeting.Message,
		&greeting.Status,
		&greeting.CreatedAt,
	)
	if err != nil {
		return models.Greeting{}, err
	}
	return greeting, nil
}

func (r *greetingRepository) Delete(ctx context.Context, greetingID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM greetings WHERE id = $1`, greetingID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func collectGreetings(rows *sql.Rows) ([]models.Greeting, error) {
	var greetings []models.Greeting
	for rows.Next() {
		var greeting models.Greeting
		if err := rows.Scan(
			&greeting.ID,
			&greeting.ProfileID,
			&greeting.GuestName,
			&greeting.Message,
			&greeting.Status,
			&greeting.CreatedAt,
		); err != nil {
			return nil, err
		}
		greetings = append(greetings, greeting)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return greetings, nil
}
