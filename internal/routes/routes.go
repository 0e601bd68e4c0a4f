package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/authz"
	"github.com/vivahalink/vivaha-api/internal/config"
	"github.com/vivahalink/vivaha-api/internal/handlers"
	"github.com/vivahalink/vivaha-api/internal/middleware"
)

// NewRouter sets up the API routes
func NewRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	auth *handlers.AuthHandler,
	profile *handlers.ProfileHandler,
	media *handlers.MediaHandler,
	greeting *handlers.GreetingHandler,
	rsvp *handlers.RSVPHandler,
	analytics *handlers.AnalyticsHandler,
	notification *handlers.NotificationHandler,
	catalog *handlers.CatalogHandler,
	invitation *handlers.InvitationHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check route
	router.HandleFunc("/health", handlers.HealthCheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Public auth endpoint
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)
	api.Handle("/auth/me", auth.JWTMiddleware(http.HandlerFunc(auth.Me))).Methods(http.MethodGet)

	// Static catalogs consumed by the panel and the public page
	api.HandleFunc("/config/designs", catalog.Designs).Methods(http.MethodGet)
	api.HandleFunc("/config/deities", catalog.Deities).Methods(http.MethodGet)
	api.HandleFunc("/config/languages", catalog.Languages).Methods(http.MethodGet)

	// Public invitation surface. Guest-facing writes are rate limited per
	// client IP; reads are not.
	limit := middleware.RateLimitByIP(cfg.RateLimit, logger)
	invite := api.PathPrefix("/invite").Subrouter()
	invite.HandleFunc("/{slug}", invitation.Get).Methods(http.MethodGet)
	invite.HandleFunc("/{slug}/qr", invitation.QRCode).Methods(http.MethodGet)
	invite.HandleFunc("/{slug}/calendar", invitation.Calendar).Methods(http.MethodGet)
	invite.Handle("/{slug}/greetings", limit(http.HandlerFunc(invitation.SubmitGreeting))).Methods(http.MethodPost)
	invite.Handle("/{slug}/rsvp", limit(http.HandlerFunc(invitation.SubmitRSVP))).Methods(http.MethodPost)
	invite.Handle("/{slug}/view", limit(http.HandlerFunc(invitation.TrackView))).Methods(http.MethodPost)
	invite.Handle("/{slug}/track", limit(http.HandlerFunc(invitation.TrackInteraction))).Methods(http.MethodPost)

	// Everything under /api/admin requires a valid bearer token
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.JWTMiddleware, authz.RequireAdmin)

	admin.HandleFunc("/profiles", profile.List).Methods(http.MethodGet)
	admin.HandleFunc("/profiles", profile.Create).Methods(http.MethodPost)
	admin.HandleFunc("/profiles/{profileID}", profile.Get).Methods(http.MethodGet)
	admin.HandleFunc("/profiles/{profileID}", profile.Update).Methods(http.MethodPut)
	admin.HandleFunc("/profiles/{profileID}", profile.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/profiles/{profileID}/media", media.Add).Methods(http.MethodPost)
	admin.HandleFunc("/profiles/{profileID}/media", media.List).Methods(http.MethodGet)
	admin.HandleFunc("/media/{mediaID}", media.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/profiles/{profileID}/greetings", greeting.List).Methods(http.MethodGet)
	admin.HandleFunc("/greetings/{greetingID}/approve", greeting.Approve).Methods(http.MethodPut)
	admin.HandleFunc("/greetings/{greetingID}/reject", greeting.Reject).Methods(http.MethodPut)
	admin.HandleFunc("/greetings/{greetingID}", greeting.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/profiles/{profileID}/rsvps", rsvp.List).Methods(http.MethodGet)
	admin.HandleFunc("/profiles/{profileID}/rsvps/stats", rsvp.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/profiles/{profileID}/rsvps/export", rsvp.ExportCSV).Methods(http.MethodGet)

	admin.HandleFunc("/profiles/{profileID}/analytics", analytics.Report).Methods(http.MethodGet)
	admin.HandleFunc("/profiles/{profileID}/analytics/summary", analytics.Summary).Methods(http.MethodGet)

	admin.HandleFunc("/notifications", notification.List).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/{notificationID}/read", notification.MarkRead).Methods(http.MethodPut)

	return router
}
