package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	h "github.com/gorilla/handlers"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/chat"
	"github.com/peninsula-eng/peninsula-api/internal/config"
	"github.com/peninsula-eng/peninsula-api/internal/handlers"
	"github.com/peninsula-eng/peninsula-api/internal/middleware"
	"github.com/peninsula-eng/peninsula-api/internal/repository"
	"github.com/peninsula-eng/peninsula-api/internal/routes"
	"github.com/peninsula-eng/peninsula-api/internal/scheduler"
	"github.com/peninsula-eng/peninsula-api/internal/store"
)

type application struct {
	config *config.Config
	store  *store.Store
	logger zerolog.Logger
}

func main() {
	// Set up structured, level-based logging.
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.SetFlags(0)
	log.SetOutput(logger)

	// Load configuration.
	cfg := config.Load()

	// Rehydrate the store from the app-storage snapshot.
	sink := store.NewFileSink(cfg.Storage.Path)
	st := store.New(logger)
	snap, found, err := sink.Load()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load snapshot; starting fresh")
	} else if found {
		st.Restore(snap)
		logger.Info().Int("notifications", len(snap.Notifications)).Msg("Snapshot restored")
	}

	// Create the application instance.
	app := &application{
		config: cfg,
		store:  st,
		logger: logger,
	}

	// Start the persistence flusher in a separate goroutine.
	flusher := store.NewFlusher(st, sink, cfg.Storage.FlushDebounce, logger)
	flushCtx, stopFlusher := context.WithCancel(context.Background())
	var flusherDone sync.WaitGroup
	flusherDone.Add(1)
	go func() {
		defer flusherDone.Done()
		flusher.Run(flushCtx)
	}()

	// Initialize the HTTP router and middleware.
	router := app.initRouter(logger)
	loggedRouter := middleware.LoggingMiddleware(app.logger)(router)
	corsHandler := h.CORS(
		h.AllowedOrigins(cfg.AllowedOrigins),
		h.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		h.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		h.AllowCredentials(),
	)(loggedRouter)

	// Start the HTTP server and handle graceful shutdown.
	app.startServer(corsHandler, logger)

	// Stop the flusher; its final flush writes the last snapshot.
	stopFlusher()
	flusherDone.Wait()

	logger.Info().Msg("Application terminated.")
}

// initRouter sets up all HTTP handlers and returns the router.
func (app *application) initRouter(logger zerolog.Logger) http.Handler {
	// Repositories, seeded with the demo data.
	docRepo := repository.NewDocumentRepository()
	teamRepo := repository.NewTeamRepository()
	eventRepo := repository.NewEventRepository()
	modelRepo := repository.NewModelRepository()
	messageRepo := repository.NewMessageRepository()
	repository.Seed(docRepo, teamRepo, eventRepo, modelRepo, messageRepo)

	sched := scheduler.New()
	hub := chat.NewHub(logger)

	// Handlers
	handlerSet := routes.Handlers{
		Auth:          handlers.NewAuthHandler(app.store, logger),
		Notifications: handlers.NewNotificationHandler(app.store, logger),
		Registrations: handlers.NewRegistrationHandler(app.store, logger),
		Documents:     handlers.NewDocumentHandler(docRepo, app.store, logger),
		Team:          handlers.NewTeamHandler(teamRepo, app.store, logger),
		Timeline:      handlers.NewTimelineHandler(eventRepo, logger),
		BIM:           handlers.NewBIMHandler(modelRepo, app.store, sched, app.config.Simulation.UploadDelay, logger),
		Messages:      handlers.NewMessageHandler(messageRepo, app.store, hub, sched, app.config.Simulation.DeliveryDelay, logger),
		Settings:      handlers.NewSettingsHandler(app.store, logger),
		Pages:         handlers.NewPageHandler(app.store),
		Hub:           hub,
	}

	return routes.NewRouter(app.store, handlerSet)
}

// startServer launches the HTTP server and handles graceful shutdown.
func (app *application) startServer(handler http.Handler, logger zerolog.Logger) {
	server := &http.Server{
		Addr:    ":" + app.config.ServerPort,
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
