// Package repository holds the in-memory collections behind the screen
// surfaces. The shapes follow a conventional repository layer, but the
// backing store is process memory: documents and the rest of the gallery
// data live only for the lifetime of the process, matching an application
// whose only durable state is the app-storage snapshot.
package repository

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

// ErrNotFound is returned when an id does not resolve to an entity.
var ErrNotFound = errors.New("not found")

type DocumentRepository interface {
	List() []models.Document
	Get(id string) (models.Document, bool)
	// Create stores the document and its presentational side-car.
	Create(doc models.Document, meta models.DocumentMeta)
	// Mutate applies fn to the document under the repository lock, keeping
	// workflow events serialized per document. The stored value is only
	// replaced when fn succeeds.
	Mutate(id string, fn func(models.Document) (models.Document, error)) (models.Document, error)
	Meta(id string) models.DocumentMeta
}

type documentRepository struct {
	mu    sync.Mutex
	order []string
	docs  map[string]models.Document
	meta  map[string]models.DocumentMeta
}

func NewDocumentRepository() DocumentRepository {
	return &documentRepository{
		docs: make(map[string]models.Document),
		meta: make(map[string]models.DocumentMeta),
	}
}

// List returns documents newest-first.
func (r *documentRepository) List() []models.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Document, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneDocument(r.docs[id]))
	}
	return out
}

func (r *documentRepository) Get(id string) (models.Document, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return models.Document{}, false
	}
	return cloneDocument(doc), true
}

func (r *documentRepository) Create(doc models.Document, meta models.DocumentMeta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = cloneDocument(doc)
	r.meta[doc.ID] = meta
	r.order = append([]string{doc.ID}, r.order...)
}

func (r *documentRepository) Mutate(id string, fn func(models.Document) (models.Document, error)) (models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return models.Document{}, errors.Wrapf(ErrNotFound, "document %s", id)
	}
	next, err := fn(cloneDocument(doc))
	if err != nil {
		return models.Document{}, err
	}
	r.docs[id] = cloneDocument(next)
	return next, nil
}

func (r *documentRepository) Meta(id string) models.DocumentMeta {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.meta[id]
}

// cloneDocument deep-copies the stage slice so callers never alias the
// stored chain.
func cloneDocument(doc models.Document) models.Document {
	stages := make([]models.ApprovalStage, len(doc.Stages))
	copy(stages, doc.Stages)
	doc.Stages = stages
	return doc
}
