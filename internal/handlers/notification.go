package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/store"
)

type NotificationHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewNotificationHandler(st *store.Store, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		store:  st,
		logger: logger.With().Str("handler", "notification").Logger(),
	}
}

// List returns the log newest-first together with the unread counter.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": h.store.Notifications(),
		"unreadCount":   h.store.UnreadCount(),
	})
}

// MarkRead flips one notification's read flag. Unknown or already-read ids
// are a no-op, so the response is 204 either way.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["notificationID"])
	if id == "" {
		writeError(w, http.StatusBadRequest, "notification id is required")
		return
	}
	h.store.MarkNotificationRead(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkAllNotificationsRead()
	w.WriteHeader(http.StatusNoContent)
}
