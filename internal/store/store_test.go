package store

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

func newTestStore() *Store {
	return New(zerolog.Nop())
}

func countUnread(s *Store) int {
	n := 0
	for _, notif := range s.Notifications() {
		if !notif.Read {
			n++
		}
	}
	return n
}

func TestLoginLogout(t *testing.T) {
	s := newTestStore()

	_, ok := s.CurrentUser()
	assert.False(t, ok)

	require.NoError(t, s.Login(models.User{ID: "1", Name: "أدمن", Role: models.RoleAdmin}))
	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "أدمن", user.Name)

	// A second login without logout must fail.
	err := s.Login(models.User{ID: "2", Name: "other"})
	assert.ErrorIs(t, err, ErrAlreadyAuthenticated)

	s.Logout()
	_, ok = s.CurrentUser()
	assert.False(t, ok)
	require.NoError(t, s.Login(models.User{ID: "2", Name: "other"}))
}

func TestAddNotificationOrdering(t *testing.T) {
	s := newTestStore()

	s.AddNotification("first", "m1", models.NotificationSeverityInfo)
	s.AddNotification("second", "m2", models.NotificationSeveritySuccess)
	s.AddNotification("third", "m3", models.NotificationSeverityWarning)

	notifs := s.Notifications()
	require.Len(t, notifs, 3)
	assert.Equal(t, "third", notifs[0].Title)
	assert.Equal(t, "first", notifs[2].Title)
	assert.Equal(t, 3, s.UnreadCount())
	assert.Equal(t, countUnread(s), s.UnreadCount())
}

func TestUnknownSeverityFallsBackToInfo(t *testing.T) {
	s := newTestStore()
	n := s.AddNotification("t", "m", "fatal")
	assert.Equal(t, models.NotificationSeverityInfo, n.Severity)
}

func TestMarkNotificationReadIdempotent(t *testing.T) {
	s := newTestStore()
	n := s.AddNotification("t", "m", models.NotificationSeverityInfo)
	require.Equal(t, 1, s.UnreadCount())

	s.MarkNotificationRead(n.ID)
	assert.Equal(t, 0, s.UnreadCount())
	assert.True(t, s.Notifications()[0].Read)

	// Marking again, and marking an unknown id, must not move the counter.
	s.MarkNotificationRead(n.ID)
	s.MarkNotificationRead("no-such-id")
	assert.Equal(t, 0, s.UnreadCount())
	assert.Equal(t, countUnread(s), s.UnreadCount())
}

func TestMarkAllNotificationsReadIdempotent(t *testing.T) {
	s := newTestStore()
	a := s.AddNotification("a", "m", models.NotificationSeverityInfo)
	s.AddNotification("b", "m", models.NotificationSeverityInfo)
	s.MarkNotificationRead(a.ID)
	require.Equal(t, 1, s.UnreadCount())

	s.MarkAllNotificationsRead()
	s.MarkAllNotificationsRead()

	assert.Equal(t, 0, s.UnreadCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestToggleDarkMode(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.DarkMode())
	assert.True(t, s.ToggleDarkMode())
	assert.False(t, s.ToggleDarkMode())
}

func TestSubmitRegistration(t *testing.T) {
	s := newTestStore()

	reg := s.SubmitRegistration("خالد", "khaled@example.com", "الهندسة")
	assert.NotEmpty(t, reg.ID)
	assert.False(t, reg.SubmittedAt.IsZero())

	regs := s.Registrations()
	require.Len(t, regs, 1)
	assert.Equal(t, "خالد", regs[0].Name)

	// Submission posts an info notification.
	notifs := s.Notifications()
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationSeverityInfo, notifs[0].Severity)
	assert.Equal(t, 1, s.UnreadCount())
}

func TestRegistrationQueueIsFIFO(t *testing.T) {
	s := newTestStore()
	first := s.SubmitRegistration("a", "a@example.com", "d")
	second := s.SubmitRegistration("b", "b@example.com", "d")

	regs := s.Registrations()
	require.Len(t, regs, 2)
	assert.Equal(t, first.ID, regs[0].ID)
	assert.Equal(t, second.ID, regs[1].ID)
}

func TestApproveRegistration(t *testing.T) {
	s := newTestStore()
	reg := s.SubmitRegistration("خالد", "khaled@example.com", "الهندسة")

	require.True(t, s.ApproveRegistration(reg.ID))
	assert.Empty(t, s.Registrations())

	notifs := s.Notifications()
	require.Len(t, notifs, 2)
	assert.Equal(t, models.NotificationSeveritySuccess, notifs[0].Severity)
	assert.Contains(t, notifs[0].Message, "خالد")
}

func TestRejectRegistration(t *testing.T) {
	s := newTestStore()
	reg := s.SubmitRegistration("خالد", "khaled@example.com", "الهندسة")

	require.True(t, s.RejectRegistration(reg.ID))
	assert.Empty(t, s.Registrations())
	assert.Equal(t, models.NotificationSeverityWarning, s.Notifications()[0].Severity)
}

func TestDecideUnknownRegistrationIsNoOp(t *testing.T) {
	s := newTestStore()
	reg := s.SubmitRegistration("خالد", "khaled@example.com", "الهندسة")
	before := len(s.Notifications())

	assert.False(t, s.ApproveRegistration("no-such-id"))
	assert.False(t, s.RejectRegistration("no-such-id"))

	assert.Len(t, s.Registrations(), 1)
	assert.Equal(t, reg.ID, s.Registrations()[0].ID)
	assert.Len(t, s.Notifications(), before)
}

func TestNotificationsSurviveLogout(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Login(models.User{ID: "1", Name: "أدمن"}))
	s.AddNotification("t", "m", models.NotificationSeverityInfo)
	s.SubmitRegistration("خالد", "khaled@example.com", "الهندسة")

	s.Logout()

	assert.Len(t, s.Notifications(), 2)
	assert.Len(t, s.Registrations(), 1)
}
