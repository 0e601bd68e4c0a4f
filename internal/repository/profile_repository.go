package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vivahalink/vivaha-api/internal/content"
	"github.com/vivahalink/vivaha-api/internal/expiry"
	"github.com/vivahalink/vivaha-api/internal/models"
)

const profileColumns = `
	id, slug, groom_name, bride_name, event_type, event_date,
	venue_name, venue_address, map_link, whatsapp_groom, whatsapp_bride,
	design_id, deity_id, default_language, enabled_languages,
	custom_text, sections_enabled, background_music, events,
	expiry_unit, expiry_value, expiry_at, is_active, created_at, updated_at`

type ProfileRepository interface {
	Create(ctx context.Context, profile models.Profile) (models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	GetByID(ctx context.Context, profileID string) (models.Profile, error)
	GetBySlug(ctx context.Context, slug string) (models.Profile, error)
	Update(ctx context.Context, profile models.Profile) (models.Profile, error)
	SoftDelete(ctx context.Context, profileID string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile models.Profile) (models.Profile, error) {
	customText, sections, music, events, err := marshalProfileJSON(profile)
	if err != nil {
		return models.Profile{}, err
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	query := `
		INSERT INTO profiles (
			id, slug, groom_name, bride_name, event_type, event_date,
			venue_name, venue_address, map_link, whatsapp_groom, whatsapp_bride,
			design_id, deity_id, default_language, enabled_languages,
			custom_text, sections_enabled, background_music, events,
			expiry_unit, expiry_value, expiry_at, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING` + profileColumns

	row := r.db.QueryRowContext(ctx, query,
		profile.ID,
		profile.Slug,
		profile.GroomName,
		profile.BrideName,
		profile.EventType,
		profile.EventDate,
		profile.VenueName,
		profile.VenueAddress,
		profile.MapLink,
		profile.WhatsappGroom,
		profile.WhatsappBride,
		profile.DesignID,
		nullableString(profile.DeityID),
		profile.DefaultLanguage,
		pq.Array(profile.EnabledLanguages),
		customText,
		sections,
		music,
		events,
		string(profile.ExpiryUnit),
		profile.ExpiryValue,
		profile.ExpiryAt,
		profile.IsActive,
	)
	return scanProfile(row)
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) GetByID(ctx context.Context, profileID string) (models.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles
		WHERE id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, query, profileID))
}

func (r *profileRepository) GetBySlug(ctx context.Context, slug string) (models.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles
		WHERE slug = $1`
	return scanProfile(r.db.QueryRowContext(ctx, query, slug))
}

// Update writes every mutable column. The slug is deliberately absent: it is
// fixed at creation and the public link must never rot.
func (r *profileRepository) Update(ctx context.Context, profile models.Profile) (models.Profile, error) {
	customText, sections, music, events, err := marshalProfileJSON(profile)
	if err != nil {
		return models.Profile{}, err
	}

	query := `
		UPDATE profiles SET
			groom_name = $2, bride_name = $3, event_type = $4, event_date = $5,
			venue_name = $6, venue_address = $7, map_link = $8,
			whatsapp_groom = $9, whatsapp_bride = $10,
			design_id = $11, deity_id = $12, default_language = $13,
			enabled_languages = $14, custom_text = $15, sections_enabled = $16,
			background_music = $17, events = $18,
			expiry_unit = $19, expiry_value = $20, expiry_at = $21,
			is_active = $22, updated_at = now()
		WHERE id = $1
		RETURNING` + profileColumns

	row := r.db.QueryRowContext(ctx, query,
		profile.ID,
		profile.GroomName,
		profile.BrideName,
		profile.EventType,
		profile.EventDate,
		profile.VenueName,
		profile.VenueAddress,
		profile.MapLink,
		profile.WhatsappGroom,
		profile.WhatsappBride,
		profile.DesignID,
		nullableString(profile.DeityID),
		profile.DefaultLanguage,
		pq.Array(profile.EnabledLanguages),
		customText,
		sections,
		music,
		events,
		string(profile.ExpiryUnit),
		profile.ExpiryValue,
		profile.ExpiryAt,
		profile.IsActive,
	)
	return scanProfile(row)
}

func (r *profileRepository) SoftDelete(ctx context.Context, profileID string) error {
	const query = `
		UPDATE profiles
		SET is_active = FALSE, updated_at = now()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, profileID)
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

func (r *profileRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

func marshalProfileJSON(profile models.Profile) (customText, sections, music, events []byte, err error) {
	if profile.CustomText == nil {
		profile.CustomText = content.Overrides{}
	}
	if profile.Events == nil {
		profile.Events = []models.SubEvent{}
	}
	if customText, err = json.Marshal(profile.CustomText); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal custom_text: %w", err)
	}
	if sections, err = json.Marshal(profile.SectionsEnabled); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal sections_enabled: %w", err)
	}
	if music, err = json.Marshal(profile.BackgroundMusic); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal background_music: %w", err)
	}
	if events, err = json.Marshal(profile.Events); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal events: %w", err)
	}
	return customText, sections, music, events, nil
}

func scanProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (models.Profile, error) {
	var (
		profile    models.Profile
		deityID    sql.NullString
		languages  pq.StringArray
		customText []byte
		sections   []byte
		music      []byte
		events     []byte
		expiryUnit string
	)

	if err := scanner.Scan(
		&profile.ID,
		&profile.Slug,
		&profile.GroomName,
		&profile.BrideName,
		&profile.EventType,
		&profile.EventDate,
		&profile.VenueName,
		&profile.VenueAddress,
		&profile.MapLink,
		&profile.WhatsappGroom,
		&profile.WhatsappBride,
		&profile.DesignID,
		&deityID,
		&profile.DefaultLanguage,
		&languages,
		&customText,
		&sections,
		&music,
		&events,
		&expiryUnit,
		&profile.ExpiryValue,
		&profile.ExpiryAt,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return models.Profile{}, err
	}

	if deityID.Valid {
		val := deityID.String
		profile.DeityID = &val
	}
	profile.EnabledLanguages = []string(languages)
	profile.ExpiryUnit = expiry.Unit(expiryUnit)

	if len(customText) > 0 {
		if err := json.Unmarshal(customText, &profile.CustomText); err != nil {
			return models.Profile{}, fmt.Errorf("unmarshal custom_text: %w", err)
		}
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &profile.SectionsEnabled); err != nil {
			return models.Profile{}, fmt.Errorf("unmarshal sections_enabled: %w", err)
		}
	}
	if len(music) > 0 {
		if err := json.Unmarshal(music, &profile.BackgroundMusic); err != nil {
			return models.Profile{}, fmt.Errorf("unmarshal background_music: %w", err)
		}
	}
	if len(events) > 0 {
		if err := json.Unmarshal(events, &profile.Events); err != nil {
			return models.Profile{}, fmt.Errorf("unmarshal events: %w", err)
		}
	}

	return profile, nil
}

func nullableString(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
