package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/store"
)

// RegistrationHandler exposes the pending-registration queue to the
// settings screen. Decisions are restricted to the admin role.
type RegistrationHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewRegistrationHandler(st *store.Store, logger zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		store:  st,
		logger: logger.With().Str("handler", "registration").Logger(),
	}
}

func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pendingRegistrations": h.store.Registrations(),
	})
}

// Approve dequeues the entry and records the decision. An unknown id is a
// silent no-op per the queue contract, so the response is 204 either way.
func (h *RegistrationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.store.ApproveRegistration, "approved")
}

func (h *RegistrationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.store.RejectRegistration, "rejected")
}

func (h *RegistrationHandler) decide(w http.ResponseWriter, r *http.Request, op func(string) bool, verb string) {
	if !h.requireAdmin(w) {
		return
	}
	id := strings.TrimSpace(mux.Vars(r)["registrationID"])
	if id == "" {
		writeError(w, http.StatusBadRequest, "registration id is required")
		return
	}
	if op(id) {
		h.logger.Info().Str("registration_id", id).Msgf("registration %s", verb)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RegistrationHandler) requireAdmin(w http.ResponseWriter) bool {
	user, ok := h.store.CurrentUser()
	if !ok || !user.IsAdmin() {
		writeError(w, http.StatusForbidden, "admin role required")
		return false
	}
	return true
}
