package repository

import (
	"sync"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

type ModelRepository interface {
	List() []models.BIMModel
	Get(id string) (models.BIMModel, bool)
	Add(model models.BIMModel)
	// SetStatus flips the model's status; false when the id is unknown, so
	// delayed upload callbacks can detect a removed model.
	SetStatus(id string, status models.ModelStatus) bool
}

type modelRepository struct {
	mu     sync.Mutex
	order  []string
	models map[string]models.BIMModel
}

func NewModelRepository() ModelRepository {
	return &modelRepository{models: make(map[string]models.BIMModel)}
}

func (r *modelRepository) List() []models.BIMModel {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BIMModel, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.models[id])
	}
	return out
}

func (r *modelRepository) Get(id string) (models.BIMModel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.models[id]
	return m, ok
}

func (r *modelRepository) Add(model models.BIMModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[model.ID] = model
	r.order = append([]string{model.ID}, r.order...)
}

func (r *modelRepository) SetStatus(id string, status models.ModelStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.models[id]
	if !ok {
		return false
	}
	m.Status = status
	r.models[id] = m
	return true
}
