package models

import "time"

type EventType string

const (
	EventTypeMeeting   EventType = "meeting"
	EventTypeDeadline  EventType = "deadline"
	EventTypeSiteVisit EventType = "site-visit"
	EventTypeMilestone EventType = "milestone"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusCompleted EventStatus = "completed"
	EventStatusDelayed   EventStatus = "delayed"
)

// TimelineEvent is one entry of the project calendar.
type TimelineEvent struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date"`
	Location    string      `json:"location,omitempty"`
	Type        EventType   `json:"type"`
	Status      EventStatus `json:"status"`
}

// IsValidEventType reports whether t is one of the known event kinds.
func IsValidEventType(t EventType) bool {
	switch t {
	case EventTypeMeeting, EventTypeDeadline, EventTypeSiteVisit, EventTypeMilestone:
		return true
	}
	return false
}
