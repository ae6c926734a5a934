package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

func tempSink(t *testing.T) *FileSink {
	t.Helper()
	return NewFileSink(filepath.Join(t.TempDir(), "app-storage.json"))
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Login(models.User{ID: "1", Name: "أدمن", Role: models.RoleAdmin}))
	s.AddNotification("t1", "m1", models.NotificationSeverityInfo)
	s.AddNotification("t2", "m2", models.NotificationSeveritySuccess)
	s.MarkNotificationRead(s.Notifications()[1].ID)
	s.SubmitRegistration("خالد", "khaled@example.com", "الهندسة")
	s.ToggleDarkMode()

	sink := tempSink(t)
	require.NoError(t, sink.Write(s.Snapshot()))

	loaded, found, err := sink.Load()
	require.NoError(t, err)
	require.True(t, found)

	restored := New(zerolog.Nop())
	restored.Restore(loaded)

	want := s.Notifications()
	got := restored.Notifications()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Severity, got[i].Severity)
		assert.Equal(t, want[i].Read, got[i].Read)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
	assert.Equal(t, s.UnreadCount(), restored.UnreadCount())

	wantRegs := s.Registrations()
	gotRegs := restored.Registrations()
	require.Len(t, gotRegs, len(wantRegs))
	for i := range wantRegs {
		assert.Equal(t, wantRegs[i].ID, gotRegs[i].ID)
		assert.Equal(t, wantRegs[i].Name, gotRegs[i].Name)
		assert.True(t, wantRegs[i].SubmittedAt.Equal(gotRegs[i].SubmittedAt))
	}
	assert.True(t, restored.DarkMode())

	user, ok := restored.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "أدمن", user.Name)
}

func TestTimestampsSurviveRoundTrip(t *testing.T) {
	s := newTestStore()
	n := s.AddNotification("t", "m", models.NotificationSeverityInfo)

	sink := tempSink(t)
	require.NoError(t, sink.Write(s.Snapshot()))
	loaded, _, err := sink.Load()
	require.NoError(t, err)

	require.Len(t, loaded.Notifications, 1)
	assert.True(t, n.CreatedAt.Equal(loaded.Notifications[0].CreatedAt))
}

func TestUnreadRecomputedOnRestore(t *testing.T) {
	// The persisted counter is never trusted; only the read flags count.
	snap := Snapshot{
		Notifications: []models.Notification{
			{ID: "a", Severity: models.NotificationSeverityInfo, Read: true},
			{ID: "b", Severity: models.NotificationSeverityInfo},
			{ID: "c", Severity: models.NotificationSeverityInfo},
		},
	}
	s := newTestStore()
	s.Restore(snap)
	assert.Equal(t, 2, s.UnreadCount())
}

func TestRestoreCoercesUnknownSeverity(t *testing.T) {
	s := newTestStore()
	s.Restore(Snapshot{Notifications: []models.Notification{{ID: "a", Severity: "critical"}}})
	assert.Equal(t, models.NotificationSeverityInfo, s.Notifications()[0].Severity)
}

func TestLoadMissingFile(t *testing.T) {
	sink := tempSink(t)
	_, found, err := sink.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app-storage.json")
	payload := `{
		"app-storage": {
			"user": null,
			"notifications": [{"id": "a", "title": "t", "severity": "info", "futureField": 7}],
			"pendingRegistrations": [],
			"darkMode": true,
			"schemaVersion": 9
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	snap, found, err := NewFileSink(path).Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, snap.DarkMode)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, "a", snap.Notifications[0].ID)
}

func TestWriteUsesStorageKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app-storage.json")
	sink := NewFileSink(path)
	require.NoError(t, sink.Write(Snapshot{DarkMode: true}))

	payload, err := os.ReadFile(path)
	require.NoError(t, err)
	var wrapper map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &wrapper))
	_, ok := wrapper[StorageKey]
	assert.True(t, ok)
}

// countingSink records every write so tests can observe coalescing.
type countingSink struct {
	mu     sync.Mutex
	writes int
	last   Snapshot
}

func (s *countingSink) Write(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.last = snap
	return nil
}

func (s *countingSink) Load() (Snapshot, bool, error) {
	return Snapshot{}, false, nil
}

func (s *countingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *countingSink) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func TestFlusherCoalescesBurstIntoOneWrite(t *testing.T) {
	s := newTestStore()
	sink := &countingSink{}
	flusher := NewFlusher(s, sink, 50*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		flusher.Run(ctx)
	}()

	for i := 0; i < 5; i++ {
		s.AddNotification("t", "m", models.NotificationSeverityInfo)
	}

	require.Eventually(t, func() bool { return sink.count() >= 1 },
		2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, sink.count())
	assert.Len(t, sink.snapshot().Notifications, 5)

	cancel()
	<-done
}

func TestFlusherFlushesFinalStateOnShutdown(t *testing.T) {
	s := newTestStore()
	sink := &countingSink{}
	flusher := NewFlusher(s, sink, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		flusher.Run(ctx)
	}()

	// The debounce never elapses; only the shutdown flush can write this.
	s.ToggleDarkMode()
	s.AddNotification("t", "m", models.NotificationSeverityInfo)

	cancel()
	<-done

	require.GreaterOrEqual(t, sink.count(), 1)
	assert.True(t, sink.snapshot().DarkMode)
	assert.Len(t, sink.snapshot().Notifications, 1)
}

func TestFlusherFlushWritesSnapshot(t *testing.T) {
	s := newTestStore()
	s.AddNotification("t", "m", models.NotificationSeverityInfo)

	sink := tempSink(t)
	NewFlusher(s, sink, 0, zerolog.Nop()).Flush()

	loaded, found, err := sink.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, loaded.Notifications, 1)
}
