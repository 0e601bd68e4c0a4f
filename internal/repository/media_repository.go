package repository

import (
	"context"
	"database/sql"

	"github.com/vivahalink/vivaha-api/internal/models"
)

type MediaRepository interface {
	Add(ctx context.Context, media models.ProfileMedia) (models.ProfileMedia, error)
	ListByProfile(ctx context.Context, profileID string) ([]models.ProfileMedia, error)
	Delete(ctx context.Context, mediaID string) error
}

type mediaRepository struct {
	db *sql.DB
}

func NewMediaRepository(db *sql.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Add(ctx context.Context, media models.ProfileMedia) (models.ProfileMedia, error) {
	const query = `
		INSERT INTO profile_media (profile_id, media_type, media_url, caption, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	var caption interface{}
	if media.Caption != nil && *media.Caption != "" {
		caption = *media.Caption
	}

	err := r.db.QueryRowContext(ctx, query,
		media.ProfileID,
		media.MediaType,
		media.MediaURL,
		caption,
		media.Position,
	).Scan(&media.ID, &media.CreatedAt)
	if err != nil {
		return models.ProfileMedia{}, err
	}

	return media, nil
}

func (r *mediaRepository) ListByProfile(ctx context.Context, profileID string) ([]models.ProfileMedia, error) {
	const query = `
		SELECT id, profile_id, media_type, media_url, caption, position, created_at
		FROM profile_media
		WHERE profile_id = $1
		ORDER BY position, created_at`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.ProfileMedia
	for rows.Next() {
		var (
			media   models.ProfileMedia
			caption sql.NullString
		)
		if err := rows.Scan(
			&media.ID,
			&media.ProfileID,
			&media.MediaType,
			&media.MediaURL,
			&caption,
			&media.Position,
			&media.CreatedAt,
		); err != nil {
			return nil, err
		}
		if caption.Valid {
			val := caption.String
			media.Caption = &val
		}
		list = append(list, media)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *mediaRepository) Delete(ctx context.Context, mediaID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profile_media WHERE id = $1`, mediaID)
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
