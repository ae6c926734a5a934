package handlers

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/models"
	"github.com/peninsula-eng/peninsula-api/internal/repository"
)

type TimelineHandler struct {
	repo   repository.EventRepository
	logger zerolog.Logger
}

func NewTimelineHandler(repo repository.EventRepository, logger zerolog.Logger) *TimelineHandler {
	return &TimelineHandler{
		repo:   repo,
		logger: logger.With().Str("handler", "timeline").Logger(),
	}
}

type addEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Type        string `json:"type"`
}

func (r addEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Date, validation.Required, validation.Date("2006-01-02 15:04").Error("expected yyyy-mm-dd hh:mm")),
		validation.Field(&r.Type, validation.Required, validation.By(func(interface{}) error {
			if !models.IsValidEventType(models.EventType(r.Type)) {
				return validation.NewError("validation_event_type", "unknown event type")
			}
			return nil
		})),
	)
}

func (h *TimelineHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": h.repo.List()})
}

func (h *TimelineHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, _ := time.Parse("2006-01-02 15:04", req.Date)

	event := models.TimelineEvent{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Type:        models.EventType(req.Type),
		Status:      models.EventStatusUpcoming,
	}
	h.repo.Add(event)
	writeJSON(w, http.StatusCreated, event)
}
