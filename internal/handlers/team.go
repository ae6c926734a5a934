package handlers

import (
	"fmt"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/i18n"
	"github.com/peninsula-eng/peninsula-api/internal/models"
	"github.com/peninsula-eng/peninsula-api/internal/repository"
	"github.com/peninsula-eng/peninsula-api/internal/store"
)

type TeamHandler struct {
	repo   repository.TeamRepository
	store  *store.Store
	logger zerolog.Logger
}

func NewTeamHandler(repo repository.TeamRepository, st *store.Store, logger zerolog.Logger) *TeamHandler {
	return &TeamHandler{
		repo:   repo,
		store:  st,
		logger: logger.With().Str("handler", "team").Logger(),
	}
}

type addMemberRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar"`
}

func (r addMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Role, validation.Required),
		validation.Field(&r.Department, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"members": h.repo.List()})
}

func (h *TeamHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	member := models.TeamMember{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		Avatar:     req.Avatar,
	}
	h.repo.Add(member)
	h.store.AddNotification(i18n.MemberAddedTitle,
		fmt.Sprintf(i18n.MemberAddedBody, member.Name),
		models.NotificationSeveritySuccess)

	writeJSON(w, http.StatusCreated, member)
}
