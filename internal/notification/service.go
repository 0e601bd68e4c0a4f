package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

type Event struct {
	ProfileID string
	Event     models.NotificationEvent
	Severity  models.NotificationSeverity
	Title     string
	Message   string
	Metadata  map[string]interface{}
}

type Service interface {
	Publish(ctx context.Context, evt Event) (models.Notification, error)
	NotifyGreetingReceived(ctx context.Context, profileID, profileSlug, guestName string) error
	NotifyRSVPReceived(ctx context.Context, profileID, profileSlug, guestName, status string, guestCount int) error
	NotifyProfileCreated(ctx context.Context, profileID, slug, groomName, brideName string) error
	ListRecent(ctx context.Context, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) (models.Notification, error)
}

type service struct {
	repo      repository.NotificationRepository
	logger    zerolog.Logger
	notifiers []Notifier
}

func NewService(repo repository.NotificationRepository, logger zerolog.Logger, notifiers ...Notifier) Service {
	active := make([]Notifier, 0, len(notifiers))
	for _, notifier := range notifiers {
		if notifier != nil {
			active = append(active, notifier)
		}
	}
	return &service{
		repo:      repo,
		logger:    logger.With().Str("component", "notification_service").Logger(),
		notifiers: active,
	}
}

func (s *service) Publish(ctx context.Context, evt Event) (models.Notification, error) {
	if evt.Event == "" {
		return models.Notification{}, fmt.Errorf("event type is required")
	}
	if evt.Severity == "" {
		evt.Severity = models.NotificationSeverityInfo
	}
	title := strings.TrimSpace(evt.Title)
	message := strings.TrimSpace(evt.Message)
	if title == "" {
		title = string(evt.Event)
	}
	params := repository.CreateNotificationParams{
		Event:    evt.Event,
		Severity: evt.Severity,
		Title:    title,
		Message:  message,
		Metadata: evt.Metadata,
	}
	if pid := strings.TrimSpace(evt.ProfileID); pid != "" {
		params.ProfileID = &pid
	}

	notif, err := s.repo.Create(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Str("event_type", string(evt.Event)).Msg("failed to persist notification")
		return models.Notification{}, err
	}
	for _, notifier := range s.notifiers {
		if err := notifier.Notify(ctx, notif); err != nil {
			logNotifyError(s.logger, err, notifierChannelName(notifier), notif)
		}
	}
	return notif, nil
}

func (s *service) NotifyGreetingReceived(ctx context.Context, profileID, profileSlug, guestName string) error {
	if strings.TrimSpace(profileID) == "" {
		return fmt.Errorf("profile id is required for greeting notifications")
	}
	name := fallbackName(guestName, "A guest")
	_, err := s.Publish(ctx, Event{
		ProfileID: profileID,
		Event:     models.NotificationEventGreetingReceived,
		Severity:  models.NotificationSeverityInfo,
		Title:     fmt.Sprintf("New greeting on %s", profileSlug),
		Message:   fmt.Sprintf("%s left a greeting awaiting moderation.", name),
		Metadata: map[string]interface{}{
			"profile_slug": profileSlug,
			"guest_name":   name,
		},
	})
	return err
}

func (s *service) NotifyRSVPReceived(ctx context.Context, profileID, profileSlug, guestName, status string, guestCount int) error {
	if strings.TrimSpace(profileID) == "" {
		return fmt.Errorf("profile id is required for rsvp notifications")
	}
	name := fallbackName(guestName, "A guest")
	metadata := map[string]interface{}{
		"profile_slug": profileSlug,
		"guest_name":   name,
		"status":       status,
	}
	if guestCount > 0 {
		metadata["guest_count"] = guestCount
	}
	_, err := s.Publish(ctx, Event{
		ProfileID: profileID,
		Event:     models.NotificationEventRSVPReceived,
		Severity:  models.NotificationSeverityInfo,
		Title:     fmt.Sprintf("New RSVP on %s", profileSlug),
		Message:   fmt.Sprintf("%s responded %q with %d guest(s).", name, status, guestCount),
		Metadata:  metadata,
	})
	return err
}

func (s *service) NotifyProfileCreated(ctx context.Context, profileID, slug, groomName, brideName string) error {
	if strings.TrimSpace(profileID) == "" {
		return fmt.Errorf("profile id is required for profile notifications")
	}
	_, err := s.Publish(ctx, Event{
		ProfileID: profileID,
		Event:     models.NotificationEventProfileCreated,
		Severity:  models.NotificationSeverityInfo,
		Title:     fmt.Sprintf("Invitation created: %s & %s", groomName, brideName),
		Message:   fmt.Sprintf("The invitation link /invite/%s is live.", slug),
		Metadata: map[string]interface{}{
			"profile_slug": slug,
		},
	})
	return err
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]models.Notification, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *service) MarkRead(ctx context.Context, notificationID string) (models.Notification, error) {
	return s.repo.MarkRead(ctx, notificationID)
}

func fallbackName(name, fallback string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return fallback
}

func notifierChannelName(n Notifier) string {
	type named interface {
		String() string
	}
	if v, ok := n.(named); ok {
		return v.String()
	}
	return fmt.Sprintf("%T", n)
}
