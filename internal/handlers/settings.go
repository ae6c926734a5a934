package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/store"
)

type SettingsHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewSettingsHandler(st *store.Store, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		store:  st,
		logger: logger.With().Str("handler", "settings").Logger(),
	}
}

// Get returns the settings screen state: the profile section mirrors the
// session user, the rest is the fixed preference data.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"darkMode": h.store.DarkMode(),
		"notifications": map[string]bool{
			"email": true,
			"push":  true,
		},
	}
	if user, ok := h.store.CurrentUser(); ok {
		resp["profile"] = user
	}
	writeJSON(w, http.StatusOK, resp)
}

// ToggleDarkMode flips the theme flag and returns the new value.
func (h *SettingsHandler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"darkMode": h.store.ToggleDarkMode()})
}
