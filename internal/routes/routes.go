package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/peninsula-eng/peninsula-api/internal/auth"
	"github.com/peninsula-eng/peninsula-api/internal/chat"
	"github.com/peninsula-eng/peninsula-api/internal/handlers"
	"github.com/peninsula-eng/peninsula-api/internal/store"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Notifications *handlers.NotificationHandler
	Registrations *handlers.RegistrationHandler
	Documents     *handlers.DocumentHandler
	Team          *handlers.TeamHandler
	Timeline      *handlers.TimelineHandler
	BIM           *handlers.BIMHandler
	Messages      *handlers.MessageHandler
	Settings      *handlers.SettingsHandler
	Pages         *handlers.PageHandler
	Hub           *chat.Hub
}

// NewRouter sets up the API routes
func NewRouter(st *store.Store, h Handlers) *mux.Router {
	router := mux.NewRouter()

	// Health check route
	router.HandleFunc("/health", handlers.HealthCheck).Methods(http.MethodGet)

	// Screen routes: root redirect plus the seven stable paths. Everything
	// but /login requires a session and bounces to /login without one.
	router.HandleFunc("/", h.Pages.Root).Methods(http.MethodGet)
	router.Handle("/login", h.Pages.Screen("login")).Methods(http.MethodGet)
	pages := router.NewRoute().Subrouter()
	pages.Use(auth.RequirePage(st))
	for _, screen := range []string{"documents", "bim", "team", "timeline", "messages", "settings"} {
		pages.Handle("/"+screen, h.Pages.Screen(screen)).Methods(http.MethodGet)
	}

	// Public auth endpoints
	router.HandleFunc("/api/login", h.Auth.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/register", h.Auth.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/session", h.Auth.Session).Methods(http.MethodGet)

	// Everything below requires a session user.
	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.RequireUser(st))

	api.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)

	api.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read-all", h.Notifications.MarkAllRead).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{notificationID}/read", h.Notifications.MarkRead).Methods(http.MethodPost)

	api.HandleFunc("/registrations", h.Registrations.List).Methods(http.MethodGet)
	api.HandleFunc("/registrations/{registrationID}/approve", h.Registrations.Approve).Methods(http.MethodPost)
	api.HandleFunc("/registrations/{registrationID}/reject", h.Registrations.Reject).Methods(http.MethodPost)

	api.HandleFunc("/documents", h.Documents.List).Methods(http.MethodGet)
	api.HandleFunc("/documents", h.Documents.Create).Methods(http.MethodPost)
	api.HandleFunc("/documents/stats", h.Documents.Stats).Methods(http.MethodGet)
	api.HandleFunc("/documents/{documentID}", h.Documents.Get).Methods(http.MethodGet)
	api.HandleFunc("/documents/{documentID}/stages/{position}/approve", h.Documents.Approve).Methods(http.MethodPost)
	api.HandleFunc("/documents/{documentID}/stages/{position}/reject", h.Documents.Reject).Methods(http.MethodPost)
	api.HandleFunc("/documents/{documentID}/stages/{position}/request-changes", h.Documents.RequestChanges).Methods(http.MethodPost)

	api.HandleFunc("/team", h.Team.List).Methods(http.MethodGet)
	api.HandleFunc("/team", h.Team.Add).Methods(http.MethodPost)

	api.HandleFunc("/events", h.Timeline.List).Methods(http.MethodGet)
	api.HandleFunc("/events", h.Timeline.Add).Methods(http.MethodPost)

	api.HandleFunc("/models", h.BIM.List).Methods(http.MethodGet)
	api.HandleFunc("/models", h.BIM.Add).Methods(http.MethodPost)

	api.HandleFunc("/messages", h.Messages.List).Methods(http.MethodGet)
	api.HandleFunc("/messages", h.Messages.Send).Methods(http.MethodPost)
	api.HandleFunc("/calls", h.Messages.StartCall).Methods(http.MethodPost)
	api.Handle("/messages/ws", h.Hub).Methods(http.MethodGet)

	api.HandleFunc("/settings", h.Settings.Get).Methods(http.MethodGet)
	api.HandleFunc("/settings/dark-mode", h.Settings.ToggleDarkMode).Methods(http.MethodPost)

	return router
}
