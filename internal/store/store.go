// Package store holds the device-scoped application state: the session
// user, the notification log with its unread counter, the dark-mode flag
// and the pending-registration queue. A single Store instance is owned by
// the application root and handed to the HTTP layer; every mutation
// signals the persistence flusher, which snapshots the state to the
// app-storage sink.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/peninsula-eng/peninsula-api/internal/i18n"
	"github.com/peninsula-eng/peninsula-api/internal/models"
)

// ErrAlreadyAuthenticated is returned by Login when a user is already set;
// the caller must log out first.
var ErrAlreadyAuthenticated = errors.New("a user is already authenticated")

type Store struct {
	mu sync.Mutex

	user          *models.User
	notifications []models.Notification
	unread        int
	darkMode      bool
	registrations []models.PendingRegistration

	changes chan struct{}
	logger  zerolog.Logger
}

func New(logger zerolog.Logger) *Store {
	return &Store{
		changes: make(chan struct{}, 1),
		logger:  logger.With().Str("component", "store").Logger(),
	}
}

// Changes signals after every mutation. The channel carries no payload and
// coalesces: a slow reader sees at least one signal for any burst of
// mutations.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

// Login sets the session user. Exactly zero or one user exists per
// session; a second login without an intervening logout fails.
func (s *Store) Login(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		return ErrAlreadyAuthenticated
	}
	u := user
	s.user = &u
	s.markDirty()
	return nil
}

// Logout clears the session user. Notifications and registrations are
// device-scoped and survive logout.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.markDirty()
}

func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// AddNotification prepends a new unread notification; the newest entry is
// always first in iteration order. Severities outside the closed palette
// fall back to info.
func (s *Store) AddNotification(title, message string, severity models.NotificationSeverity) models.Notification {
	if !models.IsValidSeverity(severity) {
		severity = models.NotificationSeverityInfo
	}
	n := models.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
	s.unread++
	s.markDirty()
	return n
}

// Notifications returns the log newest-first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

// MarkNotificationRead flips one notification to read. Unknown or
// already-read ids are a no-op; the counter only moves when the flag
// actually flips, so repeated calls cannot drive it negative.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID != id {
			continue
		}
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			s.unread--
			s.markDirty()
		}
		return
	}
}

// MarkAllNotificationsRead sets every read flag; idempotent.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for i := range s.notifications {
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed = true
		}
	}
	s.unread = 0
	if changed {
		s.markDirty()
	}
}

func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// ToggleDarkMode flips the theme flag and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = !s.darkMode
	s.markDirty()
	return s.darkMode
}

// SubmitRegistration enqueues a sign-up request and posts the info
// notification the admin sees on the settings screen.
func (s *Store) SubmitRegistration(name, email, department string) models.PendingRegistration {
	reg := models.PendingRegistration{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Department:  department,
		SubmittedAt: time.Now(),
	}

	s.mu.Lock()
	s.registrations = append(s.registrations, reg)
	s.markDirty()
	s.mu.Unlock()

	s.AddNotification(i18n.RegistrationSubmittedTitle, i18n.RegistrationSubmittedBody, models.NotificationSeverityInfo)
	return reg
}

// Registrations returns the queue in submission order.
func (s *Store) Registrations() []models.PendingRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PendingRegistration, len(s.registrations))
	copy(out, s.registrations)
	return out
}

// ApproveRegistration dequeues the entry and posts a success notification.
// An unknown id is a silent no-op: the queue is unchanged and nothing is
// posted.
func (s *Store) ApproveRegistration(id string) bool {
	reg, ok := s.removeRegistration(id)
	if !ok {
		return false
	}
	s.AddNotification(i18n.RegistrationApprovedTitle,
		fmt.Sprintf(i18n.RegistrationApprovedBody, reg.Name),
		models.NotificationSeveritySuccess)
	return true
}

// RejectRegistration dequeues the entry and posts a warning notification;
// unknown ids are a silent no-op.
func (s *Store) RejectRegistration(id string) bool {
	reg, ok := s.removeRegistration(id)
	if !ok {
		return false
	}
	s.AddNotification(i18n.RegistrationRejectedTitle,
		fmt.Sprintf(i18n.RegistrationRejectedBody, reg.Name),
		models.NotificationSeverityWarning)
	return true
}

func (s *Store) removeRegistration(id string) (models.PendingRegistration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, reg := range s.registrations {
		if reg.ID == id {
			s.registrations = append(s.registrations[:i], s.registrations[i+1:]...)
			s.markDirty()
			return reg, true
		}
	}
	return models.PendingRegistration{}, false
}

// markDirty must be called with the mutex held. The send never blocks; a
// pending signal already covers this mutation.
func (s *Store) markDirty() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
