package handlers

import (
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/chat"
	"github.com/peninsula-eng/peninsula-api/internal/i18n"
	"github.com/peninsula-eng/peninsula-api/internal/models"
	"github.com/peninsula-eng/peninsula-api/internal/repository"
	"github.com/peninsula-eng/peninsula-api/internal/scheduler"
	"github.com/peninsula-eng/peninsula-api/internal/store"
)

// MessageHandler serves the chat surface. Sending is local: the message is
// appended, broadcast to websocket clients and walked through a simulated
// delivery progression on the scheduler.
type MessageHandler struct {
	repo          repository.MessageRepository
	store         *store.Store
	hub           *chat.Hub
	sched         scheduler.Scheduler
	deliveryDelay time.Duration
	logger        zerolog.Logger
}

func NewMessageHandler(repo repository.MessageRepository, st *store.Store, hub *chat.Hub, sched scheduler.Scheduler, deliveryDelay time.Duration, logger zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		repo:          repo,
		store:         st,
		hub:           hub,
		sched:         sched,
		deliveryDelay: deliveryDelay,
		logger:        logger.With().Str("handler", "message").Logger(),
	}
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (r sendMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}

type startCallRequest struct {
	Kind string `json:"kind"`
}

func (r startCallRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.Required, validation.In("audio", "video")),
	)
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": h.repo.List()})
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg := models.ChatMessage{
		ID:     uuid.NewString(),
		Sender: user.Name,
		Avatar: user.Avatar,
		Body:   req.Content,
		Own:    true,
		Status: models.MessageStatusSent,
		SentAt: h.sched.Now(),
	}
	h.repo.Append(msg)
	h.hub.Broadcast(msg)

	h.sched.AfterFunc(h.deliveryDelay, func() { h.advanceDelivery(msg.ID, models.MessageStatusDelivered) })
	h.sched.AfterFunc(2*h.deliveryDelay, func() { h.advanceDelivery(msg.ID, models.MessageStatusRead) })
	h.sched.AfterFunc(3*h.deliveryDelay, h.postReply)

	writeJSON(w, http.StatusCreated, msg)
}

// postReply appends the simulated peer's canned answer once the sent
// message has been "read". Skipped when the session ended in the meantime.
func (h *MessageHandler) postReply() {
	if _, ok := h.store.CurrentUser(); !ok {
		return
	}
	reply := models.ChatMessage{
		ID:     uuid.NewString(),
		Sender: i18n.ChatPeerName,
		Body:   i18n.ChatPeerReply,
		Status: models.MessageStatusDelivered,
		SentAt: h.sched.Now(),
	}
	h.repo.Append(reply)
	h.hub.Broadcast(reply)
}

// advanceDelivery fires after the simulated delay and re-checks the
// session before touching state.
func (h *MessageHandler) advanceDelivery(id string, status models.MessageStatus) {
	if _, ok := h.store.CurrentUser(); !ok {
		return
	}
	if updated, ok := h.repo.SetStatus(id, status); ok {
		h.hub.Broadcast(updated)
	}
}

// StartCall returns a simulated call descriptor; there is no media
// transport behind it.
func (h *MessageHandler) StartCall(w http.ResponseWriter, r *http.Request) {
	var req startCallRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":        uuid.NewString(),
		"kind":      req.Kind,
		"status":    "simulated",
		"startedAt": h.sched.Now(),
	})
}
