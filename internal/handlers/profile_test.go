package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/vivahalink/vivaha-api/internal/expiry"
	"github.com/vivahalink/vivaha-api/internal/models"
)

func newTestProfileHandler() (*ProfileHandler, *mockProfileRepository, *mockNotificationService) {
	repo := &mockProfileRepository{}
	notifications := &mockNotificationService{}
	return NewProfileHandler(repo, notifications, zerolog.Nop()), repo, notifications
}

func createProfileBody(extra string) string {
	base := `"groom_name":"Arjun Kumar","bride_name":"Meera Devi","venue_name":"Sri Kalyana Mandapam","event_date":"2026-11-20T10:30:00Z"`
	if extra != "" {
		base += "," + extra
	}
	return "{" + base + "}"
}

func TestProfileCreate(t *testing.T) {
	t.Run("creates with defaults", func(t *testing.T) {
		handler, repo, notifications := newTestProfileHandler()
		var stored models.Profile
		repo.CreateFunc = func(ctx context.Context, profile models.Profile) (models.Profile, error) {
			stored = profile
			profile.ID = "prof-1"
			profile.CreatedAt = time.Now().UTC()
			return profile, nil
		}
		var notified bool
		notifications.NotifyProfileCreatedFunc = func(ctx context.Context, profileID, slug, groomName, brideName string) error {
			notified = true
			require.Equal(t, "prof-1", profileID)
			return nil
		}

		req := httptest.NewRequest(http.MethodPost, "/api/admin/profiles", bytes.NewBufferString(createProfileBody("")))
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.True(t, notified)

		// first names only, lowercased, with a six character suffix
		require.Regexp(t, regexp.MustCompile(`^arjun-meera-[a-z0-9]{6}$`), stored.Slug)

		require.Equal(t, models.EventTypeMarriage, stored.EventType)
		require.Equal(t, "royal_classic", stored.DesignID)
		require.Equal(t, "english", stored.DefaultLanguage)
		require.Equal(t, []string{"english"}, stored.EnabledLanguages)
		require.True(t, stored.IsActive)
		require.True(t, stored.SectionsEnabled.RSVP)

		// no expiry config defaults to thirty days
		require.Equal(t, expiry.UnitDays, stored.ExpiryUnit)
		require.Equal(t, 30, stored.ExpiryValue)
		require.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 30), stored.ExpiryAt, 5*time.Second)

		var resp profileResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Equal(t, "/invite/"+stored.Slug, resp.InvitationLink)
		require.Greater(t, resp.ExpiresIn, int64(0))
	})

	t.Run("honors an hours expiry", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		var stored models.Profile
		repo.CreateFunc = func(ctx context.Context, profile models.Profile) (models.Profile, error) {
			stored = profile
			return profile, nil
		}

		body := createProfileBody(`"link_expiry_unit":"hours","link_expiry_value":48`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/profiles", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Equal(t, expiry.UnitHours, stored.ExpiryUnit)
		require.Equal(t, 48, stored.ExpiryValue)
		require.WithinDuration(t, time.Now().UTC().Add(48*time.Hour), stored.ExpiryAt, 5*time.Second)
	})

	t.Run("unknown expiry unit collapses to the default", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		var stored models.Profile
		repo.CreateFunc = func(ctx context.Context, profile models.Profile) (models.Profile, error) {
			stored = profile
			return profile, nil
		}

		body := createProfileBody(`"link_expiry_unit":"weeks","link_expiry_value":2`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/profiles", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Equal(t, expiry.UnitDays, stored.ExpiryUnit)
		require.Equal(t, 30, stored.ExpiryValue)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name string
			body string
			want string
		}{
			{"missing groom", `{"bride_name":"Meera","venue_name":"Hall","event_date":"2026-11-20T10:30:00Z"}`, "groom_name is required"},
			{"missing bride", `{"groom_name":"Arjun","venue_name":"Hall","event_date":"2026-11-20T10:30:00Z"}`, "bride_name is required"},
			{"missing venue", `{"groom_name":"Arjun","bride_name":"Meera","event_date":"2026-11-20T10:30:00Z"}`, "venue_name is required"},
			{"missing date", `{"groom_name":"Arjun","bride_name":"Meera","venue_name":"Hall"}`, "event_date is required"},
			{"bad event type", createProfileBody(`"event_type":"housewarming"`), `unknown event_type "housewarming"`},
			{"bad design", createProfileBody(`"design_id":"neon_rave"`), `unknown design_id "neon_rave"`},
			{"bad deity", createProfileBody(`"deity_id":"zeus"`), `unknown deity_id "zeus"`},
			{"bad default language", createProfileBody(`"default_language":"french"`), `unknown default_language "french"`},
			{"bad enabled language", createProfileBody(`"enabled_languages":["english","french"]`), `unknown language "french" in enabled_languages`},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				handler, _, _ := newTestProfileHandler()
				req := httptest.NewRequest(http.MethodPost, "/api/admin/profiles", bytes.NewBufferString(tc.body))
				rr := httptest.NewRecorder()
				handler.Create(rr, req)
				requireErrorResponse(t, rr, http.StatusBadRequest, tc.want)
			})
		}
	})

	t.Run("retries on slug collision", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		checks := 0
		repo.SlugExistsFunc = func(ctx context.Context, slug string) (bool, error) {
			checks++
			return checks <= 2, nil
		}

		req := httptest.NewRequest(http.MethodPost, "/api/admin/profiles", bytes.NewBufferString(createProfileBody("")))
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Equal(t, 3, checks)
	})
}

func TestProfileGet(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		repo.GetByIDFunc = func(ctx context.Context, profileID string) (models.Profile, error) {
			return models.Profile{}, sql.ErrNoRows
		}

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/admin/profiles/nope", nil),
			map[string]string{"profileID": "nope"})
		rr := httptest.NewRecorder()
		handler.Get(rr, req)

		requireErrorResponse(t, rr, http.StatusNotFound, "profile not found")
	})

	t.Run("found", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		repo.GetByIDFunc = func(ctx context.Context, profileID string) (models.Profile, error) {
			return models.Profile{ID: profileID, Slug: "arjun-meera-abc123"}, nil
		}

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/admin/profiles/prof-1", nil),
			map[string]string{"profileID": "prof-1"})
		rr := httptest.NewRecorder()
		handler.Get(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp profileResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Equal(t, "/invite/arjun-meera-abc123", resp.InvitationLink)
	})
}

func TestProfileUpdate(t *testing.T) {
	existing := models.Profile{
		ID:               "prof-1",
		Slug:             "arjun-meera-abc123",
		GroomName:        "Arjun",
		BrideName:        "Meera",
		EventType:        models.EventTypeMarriage,
		EventDate:        time.Date(2026, 11, 20, 10, 30, 0, 0, time.UTC),
		VenueName:        "Old Hall",
		DesignID:         "royal_classic",
		DefaultLanguage:  "english",
		EnabledLanguages: []string{"english"},
		ExpiryUnit:       expiry.UnitDays,
		ExpiryValue:      30,
		ExpiryAt:         time.Date(2026, 12, 20, 10, 30, 0, 0, time.UTC),
		IsActive:         true,
		CreatedAt:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	updateRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, "/api/admin/profiles/prof-1", bytes.NewBufferString(body))
		return mux.SetURLVars(req, map[string]string{"profileID": "prof-1"})
	}

	t.Run("unchanged expiry config keeps the deadline", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		repo.GetByIDFunc = func(ctx context.Context, profileID string) (models.Profile, error) {
			return existing, nil
		}
		var stored models.Profile
		repo.UpdateFunc = func(ctx context.Context, profile models.Profile) (models.Profile, error) {
			stored = profile
			return profile, nil
		}

		body := createProfileBody(`"link_expiry_unit":"days","link_expiry_value":30`)
		rr := httptest.NewRecorder()
		handler.Update(rr, updateRequest(body))

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, existing.ExpiryAt, stored.ExpiryAt)
		require.Equal(t, existing.Slug, stored.Slug)
		require.Equal(t, existing.CreatedAt, stored.CreatedAt)
	})

	t.Run("changed expiry config restarts the clock", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		repo.GetByIDFunc = func(ctx context.Context, profileID string) (models.Profile, error) {
			return existing, nil
		}
		var stored models.Profile
		repo.UpdateFunc = func(ctx context.Context, profile models.Profile) (models.Profile, error) {
			stored = profile
			return profile, nil
		}

		body := createProfileBody(`"link_expiry_unit":"hours","link_expiry_value":12`)
		rr := httptest.NewRecorder()
		handler.Update(rr, updateRequest(body))

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, expiry.UnitHours, stored.ExpiryUnit)
		require.Equal(t, 12, stored.ExpiryValue)
		require.WithinDuration(t, time.Now().UTC().Add(12*time.Hour), stored.ExpiryAt, 5*time.Second)
	})

	t.Run("is_active false deactivates", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		repo.GetByIDFunc = func(ctx context.Context, profileID string) (models.Profile, error) {
			return existing, nil
		}
		var stored models.Profile
		repo.UpdateFunc = func(ctx context.Context, profile models.Profile) (models.Profile, error) {
			stored = profile
			return profile, nil
		}

		body := createProfileBody(`"is_active":false`)
		rr := httptest.NewRecorder()
		handler.Update(rr, updateRequest(body))

		require.Equal(t, http.StatusOK, rr.Code)
		require.False(t, stored.IsActive)
	})

	t.Run("unknown profile", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		repo.GetByIDFunc = func(ctx context.Context, profileID string) (models.Profile, error) {
			return models.Profile{}, sql.ErrNoRows
		}

		rr := httptest.NewRecorder()
		handler.Update(rr, updateRequest(createProfileBody("")))

		requireErrorResponse(t, rr, http.StatusNotFound, "profile not found")
	})
}

func TestProfileDelete(t *testing.T) {
	t.Run("soft deletes", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		var deleted string
		repo.SoftDeleteFunc = func(ctx context.Context, profileID string) error {
			deleted = profileID
			return nil
		}

		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/admin/profiles/prof-1", nil),
			map[string]string{"profileID": "prof-1"})
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		require.Equal(t, "prof-1", deleted)
	})

	t.Run("unknown profile", func(t *testing.T) {
		handler, repo, _ := newTestProfileHandler()
		repo.SoftDeleteFunc = func(ctx context.Context, profileID string) error {
			return sql.ErrNoRows
		}

		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/admin/profiles/prof-1", nil),
			map[string]string{"profileID": "prof-1"})
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		requireErrorResponse(t, rr, http.StatusNotFound, "profile not found")
	})
}

func TestProfileList(t *testing.T) {
	handler, repo, _ := newTestProfileHandler()
	repo.ListFunc = func(ctx context.Context) ([]models.Profile, error) {
		return []models.Profile{
			{ID: "p1", Slug: "a-b-111111"},
			{ID: "p2", Slug: "c-d-222222"},
		}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []profileResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	require.Equal(t, "/invite/a-b-111111", resp[0].InvitationLink)
}

func TestFirstNameSegment(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Arjun Kumar", "arjun"},
		{"  Meera  ", "meera"},
		{"Jean-Luc", "jeanluc"},
		{"అర్జున్", "guest"},
		{"", "guest"},
		{"123", "guest"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, firstNameSegment(tc.in), fmt.Sprintf("input %q", tc.in))
	}
}
