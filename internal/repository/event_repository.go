package repository

import (
	"sort"
	"sync"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

type EventRepository interface {
	List() []models.TimelineEvent
	Add(event models.TimelineEvent)
}

type eventRepository struct {
	mu     sync.Mutex
	events []models.TimelineEvent
}

func NewEventRepository() EventRepository {
	return &eventRepository{}
}

// List returns events in calendar order.
func (r *eventRepository) List() []models.TimelineEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.TimelineEvent, len(r.events))
	copy(out, r.events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (r *eventRepository) Add(event models.TimelineEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}
