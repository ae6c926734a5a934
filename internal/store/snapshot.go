package store

import (
	"github.com/peninsula-eng/peninsula-api/internal/models"
)

// Snapshot is the persisted shape of the store, matching the single JSON
// object kept under the app-storage key. Timestamps serialize as ISO-8601
// through time.Time. The unread counter is deliberately absent: it is
// recomputed from the notification list on every restore and never
// trusted from disk.
type Snapshot struct {
	User                 *models.User                 `json:"user"`
	Notifications        []models.Notification        `json:"notifications"`
	PendingRegistrations []models.PendingRegistration `json:"pendingRegistrations"`
	DarkMode             bool                         `json:"darkMode"`
}

// Snapshot captures the current state for the persistence sink.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Notifications:        make([]models.Notification, len(s.notifications)),
		PendingRegistrations: make([]models.PendingRegistration, len(s.registrations)),
		DarkMode:             s.darkMode,
	}
	copy(snap.Notifications, s.notifications)
	copy(snap.PendingRegistrations, s.registrations)
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Restore rehydrates the store from a persisted snapshot. Notifications
// with a severity outside the palette are coerced to info; the unread
// counter is recounted from the read flags.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if snap.User != nil {
		u := *snap.User
		s.user = &u
	}

	s.notifications = make([]models.Notification, len(snap.Notifications))
	copy(s.notifications, snap.Notifications)
	unread := 0
	for i := range s.notifications {
		if !models.IsValidSeverity(s.notifications[i].Severity) {
			s.logger.Warn().
				Str("notification_id", s.notifications[i].ID).
				Str("severity", string(s.notifications[i].Severity)).
				Msg("coercing unknown severity to info")
			s.notifications[i].Severity = models.NotificationSeverityInfo
		}
		if !s.notifications[i].Read {
			unread++
		}
	}
	s.unread = unread

	s.registrations = make([]models.PendingRegistration, len(snap.PendingRegistrations))
	copy(s.registrations, snap.PendingRegistrations)
	s.darkMode = snap.DarkMode
}
