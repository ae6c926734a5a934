package repository

import (
	"sync"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

type TeamRepository interface {
	List() []models.TeamMember
	Add(member models.TeamMember)
}

type teamRepository struct {
	mu      sync.Mutex
	members []models.TeamMember
}

func NewTeamRepository() TeamRepository {
	return &teamRepository{}
}

func (r *teamRepository) List() []models.TeamMember {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.TeamMember, len(r.members))
	copy(out, r.members)
	return out
}

func (r *teamRepository) Add(member models.TeamMember) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, member)
}
