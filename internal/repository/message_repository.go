package repository

import (
	"sync"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

type MessageRepository interface {
	List() []models.ChatMessage
	Append(msg models.ChatMessage)
	// SetStatus advances a message's delivery status; false when the id is
	// unknown.
	SetStatus(id string, status models.MessageStatus) (models.ChatMessage, bool)
}

type messageRepository struct {
	mu       sync.Mutex
	messages []models.ChatMessage
}

func NewMessageRepository() MessageRepository {
	return &messageRepository{}
}

// List returns messages oldest-first, the order the chat renders them.
func (r *messageRepository) List() []models.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ChatMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *messageRepository) Append(msg models.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *messageRepository) SetStatus(id string, status models.MessageStatus) (models.ChatMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages[i].Status = status
			return r.messages[i], true
		}
	}
	return models.ChatMessage{}, false
}
