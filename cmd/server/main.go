package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	h "github.com/gorilla/handlers"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/config"
	"github.com/vivahalink/vivaha-api/internal/handlers"
	"github.com/vivahalink/vivaha-api/internal/middleware"
	"github.com/vivahalink/vivaha-api/internal/migration"
	"github.com/vivahalink/vivaha-api/internal/notification"
	"github.com/vivahalink/vivaha-api/internal/repository"
	"github.com/vivahalink/vivaha-api/internal/routes"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type application struct {
	config        *config.Config
	db            *sql.DB
	logger        zerolog.Logger
	notifications notification.Service
}

func main() {
	// Set up structured, level-based logging.
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.SetFlags(0)
	log.SetOutput(logger)

	gooseAdapter := migration.NewGooseAdapter(logger)
	goose.SetLogger(gooseAdapter)

	// Load configuration.
	cfg := config.Load()

	// Initialize database connection.
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to ping database")
	}

	// Run database migrations.
	migration.RunMigrations(cfg.DatabaseURL, logger)

	// Initialize the notification service. Email delivery is optional and
	// rides alongside the persistent activity feed.
	notificationRepo := repository.NewNotificationRepository(db)
	var notifiers []notification.Notifier
	if cfg.Email.Enabled {
		emailNotifier, err := notification.NewEmailNotifier(cfg.Email, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to configure email notifier")
		}
		notifiers = append(notifiers, emailNotifier)
	}
	notificationService := notification.NewService(notificationRepo, logger, notifiers...)

	// Create the application instance.
	app := &application{
		config:        cfg,
		db:            db,
		logger:        logger,
		notifications: notificationService,
	}

	// Make sure there is at least one admin account to log in with.
	app.seedDefaultAdmin(logger)

	// Initialize the HTTP router and middleware.
	router := app.initRouter(logger)
	loggedRouter := middleware.LoggingMiddleware(app.logger)(router)
	corsHandler := h.CORS(
		h.AllowedOrigins(cfg.Server.AllowedOrigins),
		h.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		h.AllowedHeaders([]string{"Content-Type", "Authorization", "Accept-Language"}),
		h.AllowCredentials(),
	)(loggedRouter)

	// Start the HTTP server and handle graceful shutdown.
	app.startServer(corsHandler, logger)

	logger.Info().Msg("Application terminated.")
}

// initRouter sets up all HTTP handlers and returns the router.
func (app *application) initRouter(logger zerolog.Logger) http.Handler {
	// Repositories
	profileRepo := repository.NewProfileRepository(app.db)
	mediaRepo := repository.NewMediaRepository(app.db)
	greetingRepo := repository.NewGreetingRepository(app.db)
	rsvpRepo := repository.NewRSVPRepository(app.db)
	analyticsRepo := repository.NewAnalyticsRepository(app.db)

	// Handlers
	authHandler := handlers.NewAuthHandler(app.db, app.config, logger)
	profileHandler := handlers.NewProfileHandler(profileRepo, app.notifications, logger)
	mediaHandler := handlers.NewMediaHandler(mediaRepo, profileRepo, logger)
	greetingHandler := handlers.NewGreetingHandler(greetingRepo, logger)
	rsvpHandler := handlers.NewRSVPHandler(rsvpRepo, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsRepo, logger)
	notificationHandler := handlers.NewNotificationHandler(app.notifications, logger)
	catalogHandler := handlers.NewCatalogHandler()
	invitationHandler := handlers.NewInvitationHandler(
		profileRepo, mediaRepo, greetingRepo, rsvpRepo, analyticsRepo,
		app.notifications, app.config.Server.PublicBaseURL, logger,
	)

	return routes.NewRouter(
		app.config, logger,
		authHandler, profileHandler, mediaHandler, greetingHandler,
		rsvpHandler, analyticsHandler, notificationHandler, catalogHandler,
		invitationHandler,
	)
}

// seedDefaultAdmin creates the bootstrap admin account on a fresh database.
func (app *application) seedDefaultAdmin(logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminRepo := repository.NewAdminRepository(app.db)
	count, err := adminRepo.Count(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to count admin accounts")
	}
	if count > 0 {
		return
	}

	admin, err := adminRepo.Create(ctx, app.config.Auth.AdminEmail, app.config.Auth.AdminPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed admin account")
	}
	logger.Info().Str("email", admin.Email).Msg("Seeded default admin account")
	if app.config.Auth.AdminPassword == config.DefaultAdminPassword {
		logger.Warn().Msg("Default admin password in use; change auth.admin_password before going live")
	}
}

// startServer launches the HTTP server and handles graceful shutdown.
func (app *application) startServer(handler http.Handler, logger zerolog.Logger) {
	server := &http.Server{
		Addr:    ":" + app.config.Server.Port,
		Handler: handler,
	}

	// Channel to listen for server errors
	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
	}()

	// Wait for an interrupt signal or a server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info().Msgf("Received signal: %s. Shutting down...", sig)
	case err := <-serverErrCh:
		logger.Error().Err(err).Msg("Server error occurred")
	}

	// Gracefully shut down the HTTP server.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		logger.Info().Msg("HTTP server shutdown complete.")
	}
}
