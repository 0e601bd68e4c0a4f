package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

type mockNotificationRepository struct {
	CreateFunc     func(ctx context.Context, params repository.CreateNotificationParams) (models.Notification, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]models.Notification, error)
	MarkReadFunc   func(ctx context.Context, notificationID string) (models.Notification, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, params repository.CreateNotificationParams) (models.Notification, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return models.Notification{ID: "notif-1", EventType: params.Event, Severity: params.Severity, Title: params.Title, Message: params.Message}, nil
}

func (m *mockNotificationRepository) ListRecent(ctx context.Context, limit int) ([]models.Notification, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, notificationID string) (models.Notification, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, notificationID)
	}
	return models.Notification{ID: notificationID}, nil
}

type mockNotifier struct {
	NotifyFunc func(ctx context.Context, notification models.Notification) error
	calls      int
}

func (m *mockNotifier) Notify(ctx context.Context, notification models.Notification) error {
	m.calls++
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, notification)
	}
	return nil
}

func TestPublish(t *testing.T) {
	t.Run("persists and fans out to notifiers", func(t *testing.T) {
		var created repository.CreateNotificationParams
		repo := &mockNotificationRepository{
			CreateFunc: func(ctx context.Context, params repository.CreateNotificationParams) (models.Notification, error) {
				created = params
				return models.Notification{ID: "notif-1", EventType: params.Event, Title: params.Title}, nil
			},
		}
		first := &mockNotifier{}
		second := &mockNotifier{}
		svc := NewService(repo, zerolog.Nop(), first, second)

		notif, err := svc.Publish(context.Background(), Event{
			ProfileID: "prof-1",
			Event:     models.NotificationEventRSVPReceived,
			Title:     "  New RSVP  ",
			Message:   "Ravi responded",
		})
		require.NoError(t, err)
		require.Equal(t, "notif-1", notif.ID)

		require.NotNil(t, created.ProfileID)
		require.Equal(t, "prof-1", *created.ProfileID)
		require.Equal(t, "New RSVP", created.Title)
		require.Equal(t, models.NotificationSeverityInfo, created.Severity)
		require.Equal(t, 1, first.calls)
		require.Equal(t, 1, second.calls)
	})

	t.Run("requires an event type", func(t *testing.T) {
		svc := NewService(&mockNotificationRepository{}, zerolog.Nop())
		_, err := svc.Publish(context.Background(), Event{Title: "untyped"})
		require.Error(t, err)
	})

	t.Run("title falls back to the event type", func(t *testing.T) {
		var created repository.CreateNotificationParams
		repo := &mockNotificationRepository{
			CreateFunc: func(ctx context.Context, params repository.CreateNotificationParams) (models.Notification, error) {
				created = params
				return models.Notification{ID: "notif-1"}, nil
			},
		}
		svc := NewService(repo, zerolog.Nop())

		_, err := svc.Publish(context.Background(), Event{Event: models.NotificationEventGreetingReceived})
		require.NoError(t, err)
		require.Equal(t, "greeting_received", created.Title)
		require.Nil(t, created.ProfileID)
	})

	t.Run("notifier failures do not fail the publish", func(t *testing.T) {
		failing := &mockNotifier{
			NotifyFunc: func(ctx context.Context, notification models.Notification) error {
				return errors.New("smtp down")
			},
		}
		svc := NewService(&mockNotificationRepository{}, zerolog.Nop(), failing)

		_, err := svc.Publish(context.Background(), Event{Event: models.NotificationEventGreetingReceived})
		require.NoError(t, err)
		require.Equal(t, 1, failing.calls)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := &mockNotificationRepository{
			CreateFunc: func(ctx context.Context, params repository.CreateNotificationParams) (models.Notification, error) {
				return models.Notification{}, errors.New("insert failed")
			},
		}
		notifier := &mockNotifier{}
		svc := NewService(repo, zerolog.Nop(), notifier)

		_, err := svc.Publish(context.Background(), Event{Event: models.NotificationEventGreetingReceived})
		require.Error(t, err)
		require.Zero(t, notifier.calls)
	})
}

func TestNotifyHelpers(t *testing.T) {
	t.Run("greeting notification names the guest", func(t *testing.T) {
		var created repository.CreateNotificationParams
		repo := &mockNotificationRepository{
			CreateFunc: func(ctx context.Context, params repository.CreateNotificationParams) (models.Notification, error) {
				created = params
				return models.Notification{ID: "notif-1"}, nil
			},
		}
		svc := NewService(repo, zerolog.Nop())

		err := svc.NotifyGreetingReceived(context.Background(), "prof-1", "arjun-meera-x7k2m9", "Ravi")
		require.NoError(t, err)
		require.Equal(t, models.NotificationEventGreetingReceived, created.Event)
		require.Equal(t, "New greeting on arjun-meera-x7k2m9", created.Title)
		require.Contains(t, created.Message, "Ravi")
		require.Equal(t, "Ravi", created.Metadata["guest_name"])
	})

	t.Run("anonymous guests get a placeholder name", func(t *testing.T) {
		var created repository.CreateNotificationParams
		repo := &mockNotificationRepository{
			CreateFunc: func(ctx context.Context, params repository.CreateNotificationParams) (models.Notification, error) {
				created = params
				return models.Notification{ID: "notif-1"}, nil
			},
		}
		svc := NewService(repo, zerolog.Nop())

		err := svc.NotifyRSVPReceived(context.Background(), "prof-1", "arjun-meera-x7k2m9", "   ", "yes", 3)
		require.NoError(t, err)
		require.Equal(t, "A guest", created.Metadata["guest_name"])
		require.Equal(t, "yes", created.Metadata["status"])
		require.Equal(t, 3, created.Metadata["guest_count"])
	})

	t.Run("greeting notification requires a profile", func(t *testing.T) {
		svc := NewService(&mockNotificationRepository{}, zerolog.Nop())
		err := svc.NotifyGreetingReceived(context.Background(), "  ", "slug", "Ravi")
		require.Error(t, err)
	})
}

func TestNewServiceSkipsNilNotifiers(t *testing.T) {
	working := &mockNotifier{}
	svc := NewService(&mockNotificationRepository{}, zerolog.Nop(), nil, working, nil)

	_, err := svc.Publish(context.Background(), Event{Event: models.NotificationEventProfileCreated})
	require.NoError(t, err)
	require.Equal(t, 1, working.calls)
}
