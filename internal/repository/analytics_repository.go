package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vivahalink/vivaha-api/internal/models"
)

type AnalyticsRepository interface {
	// RecordView stores one page view. A repeat view from the same session
	// within 24 hours is swallowed; the bool reports whether a row was
	// written.
	RecordView(ctx context.Context, profileID, sessionID, deviceType string) (bool, error)
	RecordInteraction(ctx context.Context, profileID, interactionType string) error
	Summary(ctx context.Context, profileID string) (models.AnalyticsSummary, error)
	// Report aggregates over the trailing N days; days <= 0 means all time.
	Report(ctx context.Context, profileID string, days int) (models.AnalyticsReport, error)
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) RecordView(ctx context.Context, profileID, sessionID, deviceType string) (bool, error) {
	const query = `
		INSERT INTO profile_views (profile_id, session_id, device_type)
		SELECT $1, NULLIF($2, ''), $3
		WHERE $2 = '' OR NOT EXISTS (
			SELECT 1 FROM profile_views
			WHERE profile_id = $1
			  AND session_id = $2
			  AND viewed_at > now() - INTERVAL '24 hours'
		)`

	result, err := r.db.ExecContext(ctx, query, profileID, sessionID, deviceType)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *analyticsRepository) RecordInteraction(ctx context.Context, profileID, interactionType string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profile_interactions (profile_id, interaction_type) VALUES ($1, $2)`,
		profileID, interactionType)
	return err
}

func (r *analyticsRepository) Summary(ctx context.Context, profileID string) (models.AnalyticsSummary, error) {
	const query = `
		SELECT
			COUNT(*) AS total_views,
			COUNT(*) FILTER (WHERE device_type = 'mobile') AS mobile_views,
			COUNT(*) FILTER (WHERE device_type = 'desktop') AS desktop_views,
			COUNT(*) FILTER (WHERE device_type = 'tablet') AS tablet_views,
			MAX(viewed_at) AS last_viewed_at
		FROM profile_views
		WHERE profile_id = $1`

	var (
		summary    models.AnalyticsSummary
		lastViewed sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&summary.TotalViews,
		&summary.MobileViews,
		&summary.DesktopViews,
		&summary.TabletViews,
		&lastViewed,
	)
	if err != nil {
		return models.AnalyticsSummary{}, err
	}
	if lastViewed.Valid {
		t := lastViewed.Time
		summary.LastViewedAt = &t
	}
	return summary, nil
}

func (r *analyticsRepository) Report(ctx context.Context, profileID string, days int) (models.AnalyticsReport, error) {
	report := models.AnalyticsReport{ProfileID: profileID}

	const totalsQuery = `
		SELECT
			COUNT(*) AS total_views,
			COUNT(*) FILTER (WHERE device_type = 'mobile') AS mobile_views,
			COUNT(*) FILTER (WHERE device_type = 'desktop') AS desktop_views,
			COUNT(*) FILTER (WHERE device_type = 'tablet') AS tablet_views,
			COUNT(DISTINCT session_id) AS unique_sessions,
			MAX(viewed_at) AS last_viewed_at
		FROM profile_views
		WHERE profile_id = $1
		  AND ($2 <= 0 OR viewed_at >= current_date - ($2 - 1) * INTERVAL '1 day')`

	var lastViewed sql.NullTime
	err := r.db.QueryRowContext(ctx, totalsQuery, profileID, days).Scan(
		&report.TotalViews,
		&report.MobileViews,
		&report.DesktopViews,
		&report.TabletViews,
		&report.UniqueSessions,
		&lastViewed,
	)
	if err != nil {
		return models.AnalyticsReport{}, fmt.Errorf("analytics totals query error: %w", err)
	}
	if lastViewed.Valid {
		t := lastViewed.Time
		report.LastViewedAt = &t
	}

	const perDayQuery = `
		WITH bounds AS (
			SELECT COALESCE(MIN(viewed_at)::date, current_date) AS first_day
			FROM profile_views
			WHERE profile_id = $1
		), days AS (
			SELECT generate_series(
				CASE WHEN $2 > 0
					THEN current_date - ($2 - 1) * INTERVAL '1 day'
					ELSE (SELECT first_day FROM bounds)::timestamp
				END,
				current_date,
				'1 day'::INTERVAL
			) AS day
		)
		SELECT
			days.day,
			COALESCE(COUNT(pv.id), 0) AS views
		FROM days
		LEFT JOIN profile_views pv
		ON pv.viewed_at::date = days.day AND pv.profile_id = $1
		GROUP BY days.day
		ORDER BY days.day;
	`

	rows, err := r.db.QueryContext(ctx, perDayQuery, profileID, days)
	if err != nil {
		return models.AnalyticsReport{}, fmt.Errorf("analytics per-day query error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day models.ViewStatDay
		if err := rows.Scan(&day.Day, &day.Views); err != nil {
			return models.AnalyticsReport{}, fmt.Errorf("failed to scan view stat: %w", err)
		}
		report.ViewsByDay = append(report.ViewsByDay, day)
	}
	if err := rows.Err(); err != nil {
		return models.AnalyticsReport{}, err
	}

	const interactionsQuery = `
		SELECT interaction_type, COUNT(*)
		FROM profile_interactions
		WHERE profile_id = $1
		  AND ($2 <= 0 OR created_at >= current_date - ($2 - 1) * INTERVAL '1 day')
		GROUP BY interaction_type`

	report.Interactions = map[string]int{
		models.InteractionMapClick:   0,
		models.InteractionRSVPClick:  0,
		models.InteractionMusicPlay:  0,
		models.InteractionMusicPause: 0,
	}

	irows, err := r.db.QueryContext(ctx, interactionsQuery, profileID, days)
	if err != nil {
		return models.AnalyticsReport{}, fmt.Errorf("analytics interactions query error: %w", err)
	}
	defer irows.Close()

	for irows.Next() {
		var (
			kind  string
			count int
		)
		if err := irows.Scan(&kind, &count); err != nil {
			return models.AnalyticsReport{}, err
		}
		report.Interactions[kind] = count
	}
	if err := irows.Err(); err != nil {
		return models.AnalyticsReport{}, err
	}

	return report, nil
}
