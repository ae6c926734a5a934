package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/models"
	"github.com/peninsula-eng/peninsula-api/internal/repository"
	"github.com/peninsula-eng/peninsula-api/internal/store"
	"github.com/peninsula-eng/peninsula-api/internal/workflow"
)

type DocumentHandler struct {
	repo   repository.DocumentRepository
	store  *store.Store
	logger zerolog.Logger
}

func NewDocumentHandler(repo repository.DocumentRepository, st *store.Store, logger zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{
		repo:   repo,
		store:  st,
		logger: logger.With().Str("handler", "document").Logger(),
	}
}

// documentResponse joins the core document with its presentational
// side-car.
type documentResponse struct {
	models.Document
	Meta models.DocumentMeta `json:"meta"`
}

type approverPayload struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (a approverPayload) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Role, validation.Required),
	)
}

type createDocumentRequest struct {
	Title       string            `json:"title"`
	Category    string            `json:"category"`
	FileName    string            `json:"fileName"`
	FileType    string            `json:"fileType"`
	FileSize    string            `json:"fileSize"`
	Description string            `json:"description"`
	Approvers   []approverPayload `json:"approvalFlow"`
}

func (r createDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Approvers),
	)
}

type decisionRequest struct {
	Comment string `json:"comment"`
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs := h.repo.List()
	out := make([]documentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, documentResponse{Document: doc, Meta: h.repo.Meta(doc.ID)})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": out})
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["documentID"]
	doc, ok := h.repo.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, documentResponse{Document: doc, Meta: h.repo.Meta(doc.ID)})
}

// Stats feeds the dashboard cards: document counts per derived status.
func (h *DocumentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts := map[models.DocumentStatus]int{}
	docs := h.repo.List()
	for _, doc := range docs {
		counts[doc.Status]++
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":           len(docs),
		"pendingApproval": counts[models.DocumentStatusPendingApproval],
		"approved":        counts[models.DocumentStatusApproved],
		"rejected":        counts[models.DocumentStatusRejected],
	})
}

// Create submits a document: the current user becomes the submitter stage
// and the supplied approvers form the rest of the chain in order.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createDocumentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	approvers := make([]workflow.ApproverDescriptor, 0, len(req.Approvers))
	for _, a := range req.Approvers {
		approvers = append(approvers, workflow.ApproverDescriptor{
			Role:     a.Role,
			Approver: models.Approver{Name: a.Name, Role: a.Role},
		})
	}

	now := time.Now()
	stages := workflow.NewChain(models.Approver{Name: user.Name, Role: user.Role, Avatar: user.Avatar}, approvers, now)
	doc := models.Document{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Category:    req.Category,
		Author:      user.Name,
		SubmittedAt: now,
		Status:      workflow.DeriveStatus(stages),
		Stages:      stages,
	}
	meta := models.DocumentMeta{
		FileName:    req.FileName,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		Description: req.Description,
	}
	h.repo.Create(doc, meta)

	h.logger.Info().Str("document_id", doc.ID).Int("stages", len(stages)).Msg("document submitted")
	writeJSON(w, http.StatusCreated, documentResponse{Document: doc, Meta: meta})
}

func (h *DocumentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, workflow.Approve)
}

func (h *DocumentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, workflow.Reject)
}

func (h *DocumentHandler) RequestChanges(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, workflow.RequestChanges)
}

type transition func(models.Document, int, string, time.Time) (models.Document, workflow.Notice, error)

// decide applies one workflow event inside the repository's per-document
// critical section and posts the engine's notification on success.
func (h *DocumentHandler) decide(w http.ResponseWriter, r *http.Request, apply transition) {
	vars := mux.Vars(r)
	id := vars["documentID"]
	pos, err := strconv.Atoi(vars["position"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "stage position must be an integer")
		return
	}

	var req decisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var notice workflow.Notice
	doc, err := h.repo.Mutate(id, func(doc models.Document) (models.Document, error) {
		next, n, err := apply(doc, pos, req.Comment, time.Now())
		if err != nil {
			return models.Document{}, err
		}
		notice = n
		return next, nil
	})
	if err != nil {
		h.writeDecisionError(w, id, pos, err)
		return
	}

	h.store.AddNotification(notice.Title, notice.Message, notice.Severity)
	writeJSON(w, http.StatusOK, documentResponse{Document: doc, Meta: h.repo.Meta(doc.ID)})
}

func (h *DocumentHandler) writeDecisionError(w http.ResponseWriter, id string, pos int, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "document not found")
	case errors.Is(err, workflow.ErrUnknownStage):
		writeError(w, http.StatusNotFound, "unknown stage")
	case errors.Is(err, workflow.ErrStageNotCurrent):
		writeError(w, http.StatusConflict, "stage is not awaiting a decision")
	case errors.Is(err, workflow.ErrEmptyComment):
		writeError(w, http.StatusUnprocessableEntity, "a comment is required")
	default:
		h.logger.Error().Err(err).Str("document_id", id).Int("position", pos).Msg("decision failed")
		writeError(w, http.StatusInternalServerError, "failed to apply decision")
	}
}
