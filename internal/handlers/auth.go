package handlers

import (
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/auth"
	"github.com/peninsula-eng/peninsula-api/internal/i18n"
	"github.com/peninsula-eng/peninsula-api/internal/store"
)

type AuthHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Department, validation.Required),
	)
}

func NewAuthHandler(st *store.Store, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		store:  st,
		logger: logger.With().Str("handler", "auth").Logger(),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := auth.Authenticate(req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, i18n.ErrInvalidCredentials)
		return
	}

	if err := h.store.Login(user); err != nil {
		// A live session exists; the caller must log out first.
		writeError(w, http.StatusConflict, "already authenticated")
		return
	}

	h.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the state the shell needs on load: the user (if any),
// the unread counter and the theme flag.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"user":        nil,
		"unreadCount": h.store.UnreadCount(),
		"darkMode":    h.store.DarkMode(),
	}
	if user, ok := h.store.CurrentUser(); ok {
		resp["user"] = user
	}
	writeJSON(w, http.StatusOK, resp)
}

// Register enqueues a sign-up request for admin review; no account is
// created here.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reg := h.store.SubmitRegistration(req.Name, req.Email, req.Department)
	h.logger.Info().Str("registration_id", reg.ID).Msg("registration submitted")
	writeJSON(w, http.StatusCreated, reg)
}
