package handlers

import (
	"context"

	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/notification"
)

type mockAdminRepository struct {
	AuthenticateFunc func(ctx context.Context, email, password string) (models.Admin, error)
	GetByIDFunc      func(ctx context.Context, adminID string) (models.Admin, error)
	CountFunc        func(ctx context.Context) (int, error)
	CreateFunc       func(ctx context.Context, email, password string) (models.Admin, error)
}

func (m *mockAdminRepository) Authenticate(ctx context.Context, email, password string) (models.Admin, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return models.Admin{}, nil
}

func (m *mockAdminRepository) GetByID(ctx context.Context, adminID string) (models.Admin, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, adminID)
	}
	return models.Admin{}, nil
}

func (m *mockAdminRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockAdminRepository) Create(ctx context.Context, email, password string) (models.Admin, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, email, password)
	}
	return models.Admin{Email: email}, nil
}

type mockProfileRepository struct {
	CreateFunc     func(ctx context.Context, profile models.Profile) (models.Profile, error)
	ListFunc       func(ctx context.Context) ([]models.Profile, error)
	GetByIDFunc    func(ctx context.Context, profileID string) (models.Profile, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (models.Profile, error)
	UpdateFunc     func(ctx context.Context, profile models.Profile) (models.Profile, error)
	SoftDeleteFunc func(ctx context.Context, profileID string) error
	SlugExistsFunc func(ctx context.Context, slug string) (bool, error)
}

func (m *mockProfileRepository) Create(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return profile, nil
}

func (m *mockProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, profileID string) (models.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, profileID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) GetBySlug(ctx context.Context, slug string) (models.Profile, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) Update(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}
	return profile, nil
}

func (m *mockProfileRepository) SoftDelete(ctx context.Context, profileID string) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, profileID)
	}
	return nil
}

func (m *mockProfileRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}
	return false, nil
}

type mockMediaRepository struct {
	AddFunc           func(ctx context.Context, media models.ProfileMedia) (models.ProfileMedia, error)
	ListByProfileFunc func(ctx context.Context, profileID string) ([]models.ProfileMedia, error)
	DeleteFunc        func(ctx context.Context, mediaID string) error
}

func (m *mockMediaRepository) Add(ctx context.Context, media models.ProfileMedia) (models.ProfileMedia, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, media)
	}
	return media, nil
}

func (m *mockMediaRepository) ListByProfile(ctx context.Context, profileID string) ([]models.ProfileMedia, error) {
	if m.ListByProfileFunc != nil {
		return m.ListByProfileFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *mockMediaRepository) Delete(ctx context.Context, mediaID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, mediaID)
	}
	return nil
}

type mockGreetingRepository struct {
	CreateFunc        func(ctx context.Context, greeting models.Greeting) (models.Greeting, error)
	ListByProfileFunc func(ctx context.Context, profileID string, status models.GreetingStatus) ([]models.Greeting, error)
	ListApprovedFunc  func(ctx context.Context, profileID string, limit int) ([]models.Greeting, error)
	UpdateStatusFunc  func(ctx context.Context, greetingID string, status models.GreetingStatus) (models.Greeting, error)
	DeleteFunc        func(ctx context.Context, greetingID string) error
}

func (m *mockGreetingRepository) Create(ctx context.Context, greeting models.Greeting) (models.Greeting, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, greeting)
	}
	return greeting, nil
}

func (m *mockGreetingRepository) ListByProfile(ctx context.Context, profileID string, status models.GreetingStatus) ([]models.Greeting, error) {
	if m.ListByProfileFunc != nil {
		return m.ListByProfileFunc(ctx, profileID, status)
	}
	return nil, nil
}

func (m *mockGreetingRepository) ListApproved(ctx context.Context, profileID string, limit int) ([]models.Greeting, error) {
	if m.ListApprovedFunc != nil {
		return m.ListApprovedFunc(ctx, profileID, limit)
	}
	return nil, nil
}

func (m *mockGreetingRepository) UpdateStatus(ctx context.Context, greetingID string, status models.GreetingStatus) (models.Greeting, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, greetingID, status)
	}
	return models.Greeting{}, nil
}

func (m *mockGreetingRepository) Delete(ctx context.Context, greetingID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, greetingID)
	}
	return nil
}

type mockRSVPRepository struct {
	CreateFunc        func(ctx context.Context, rsvp models.RSVP) (models.RSVP, error)
	ListByProfileFunc func(ctx context.Context, profileID string, status models.RSVPStatus) ([]models.RSVP, error)
	StatsFunc         func(ctx context.Context, profileID string) (models.RSVPStats, error)
}

func (m *mockRSVPRepository) Create(ctx context.Context, rsvp models.RSVP) (models.RSVP, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rsvp)
	}
	return rsvp, nil
}

func (m *mockRSVPRepository) ListByProfile(ctx context.Context, profileID string, status models.RSVPStatus) ([]models.RSVP, error) {
	if m.ListByProfileFunc != nil {
		return m.ListByProfileFunc(ctx, profileID, status)
	}
	return nil, nil
}

func (m *mockRSVPRepository) Stats(ctx context.Context, profileID string) (models.RSVPStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, profileID)
	}
	return models.RSVPStats{}, nil
}

type mockAnalyticsRepository struct {
	RecordViewFunc        func(ctx context.Context, profileID, sessionID, deviceType string) (bool, error)
	RecordInteractionFunc func(ctx context.Context, profileID, interactionType string) error
	SummaryFunc           func(ctx context.Context, profileID string) (models.AnalyticsSummary, error)
	ReportFunc            func(ctx context.Context, profileID string, days int) (models.AnalyticsReport, error)
}

func (m *mockAnalyticsRepository) RecordView(ctx context.Context, profileID, sessionID, deviceType string) (bool, error) {
	if m.RecordViewFunc != nil {
		return m.RecordViewFunc(ctx, profileID, sessionID, deviceType)
	}
	return true, nil
}

func (m *mockAnalyticsRepository) RecordInteraction(ctx context.Context, profileID, interactionType string) error {
	if m.RecordInteractionFunc != nil {
		return m.RecordInteractionFunc(ctx, profileID, interactionType)
	}
	return nil
}

func (m *mockAnalyticsRepository) Summary(ctx context.Context, profileID string) (models.AnalyticsSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, profileID)
	}
	return models.AnalyticsSummary{}, nil
}

func (m *mockAnalyticsRepository) Report(ctx context.Context, profileID string, days int) (models.AnalyticsReport, error) {
	if m.ReportFunc != nil {
		return m.ReportFunc(ctx, profileID, days)
	}
	return models.AnalyticsReport{}, nil
}

type mockNotificationService struct {
	PublishFunc                func(ctx context.Context, evt notification.Event) (models.Notification, error)
	NotifyGreetingReceivedFunc func(ctx context.Context, profileID, profileSlug, guestName string) error
	NotifyRSVPReceivedFunc     func(ctx context.Context, profileID, profileSlug, guestName, status string, guestCount int) error
	NotifyProfileCreatedFunc   func(ctx context.Context, profileID, slug, groomName, brideName string) error
	ListRecentFunc             func(ctx context.Context, limit int) ([]models.Notification, error)
	MarkReadFunc               func(ctx context.Context, notificationID string) (models.Notification, error)
}

func (m *mockNotificationService) Publish(ctx context.Context, evt notification.Event) (models.Notification, error) {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, evt)
	}
	return models.Notification{}, nil
}

func (m *mockNotificationService) NotifyGreetingReceived(ctx context.Context, profileID, profileSlug, guestName string) error {
	if m.NotifyGreetingReceivedFunc != nil {
		return m.NotifyGreetingReceivedFunc(ctx, profileID, profileSlug, guestName)
	}
	return nil
}

func (m *mockNotificationService) NotifyRSVPReceived(ctx context.Context, profileID, profileSlug, guestName, status string, guestCount int) error {
	if m.NotifyRSVPReceivedFunc != nil {
		return m.NotifyRSVPReceivedFunc(ctx, profileID, profileSlug, guestName, status, guestCount)
	}
	return nil
}

func (m *mockNotificationService) NotifyProfileCreated(ctx context.Context, profileID, slug, groomName, brideName string) error {
	if m.NotifyProfileCreatedFunc != nil {
		return m.NotifyProfileCreatedFunc(ctx, profileID, slug, groomName, brideName)
	}
	return nil
}

func (m *mockNotificationService) ListRecent(ctx context.Context, limit int) ([]models.Notification, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, notificationID string) (models.Notification, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, notificationID)
	}
	return models.Notification{}, nil
}
