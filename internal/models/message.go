package models

import "time"

type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
)

// ChatMessage is one entry of the messages surface. Delivery progression
// (sent, delivered, read) is simulated on a timer; there is no real
// transport.
type ChatMessage struct {
	ID     string        `json:"id"`
	Sender string        `json:"sender"`
	Avatar string        `json:"avatar,omitempty"`
	Body   string        `json:"content"`
	Own    bool          `json:"isOwn"`
	Status MessageStatus `json:"status"`
	SentAt time.Time     `json:"timestamp"`
}
