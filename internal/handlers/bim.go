package handlers

import (
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/i18n"
	"github.com/peninsula-eng/peninsula-api/internal/models"
	"github.com/peninsula-eng/peninsula-api/internal/repository"
	"github.com/peninsula-eng/peninsula-api/internal/scheduler"
	"github.com/peninsula-eng/peninsula-api/internal/store"
)

// BIMHandler serves the model gallery. Uploads are simulated: the model
// appears immediately as uploading and becomes active after a bounded
// delay.
type BIMHandler struct {
	repo        repository.ModelRepository
	store       *store.Store
	sched       scheduler.Scheduler
	uploadDelay time.Duration
	logger      zerolog.Logger
}

func NewBIMHandler(repo repository.ModelRepository, st *store.Store, sched scheduler.Scheduler, uploadDelay time.Duration, logger zerolog.Logger) *BIMHandler {
	return &BIMHandler{
		repo:        repo,
		store:       st,
		sched:       sched,
		uploadDelay: uploadDelay,
		logger:      logger.With().Str("handler", "bim").Logger(),
	}
}

type addModelRequest struct {
	Name       string `json:"name"`
	Discipline string `json:"discipline"`
	Version    string `json:"version"`
	Thumbnail  string `json:"thumbnail"`
}

func (r addModelRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

func (h *BIMHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": h.repo.List()})
}

func (h *BIMHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addModelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	model := models.BIMModel{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Discipline:  req.Discipline,
		Version:     req.Version,
		Thumbnail:   req.Thumbnail,
		Status:      models.ModelStatusUploading,
		LastUpdated: h.sched.Now(),
	}
	h.repo.Add(model)
	h.sched.AfterFunc(h.uploadDelay, func() { h.completeUpload(model.ID, model.Name) })

	writeJSON(w, http.StatusAccepted, model)
}

// completeUpload fires after the simulated delay. The session may have
// ended and the model may be gone by now, so both preconditions are
// re-checked before any state moves.
func (h *BIMHandler) completeUpload(id, name string) {
	if _, ok := h.store.CurrentUser(); !ok {
		h.logger.Debug().Str("model_id", id).Msg("upload completion dropped; session ended")
		return
	}
	if !h.repo.SetStatus(id, models.ModelStatusActive) {
		return
	}
	h.store.AddNotification(i18n.ModelUploadedTitle,
		fmt.Sprintf(i18n.ModelUploadedBody, name),
		models.NotificationSeveritySuccess)
}
