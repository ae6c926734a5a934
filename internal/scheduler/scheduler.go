// Package scheduler wraps timer scheduling behind an interface so the
// simulated long-running work (uploads, chat replies) is driven by an
// injectable clock in tests instead of real sleeps.
package scheduler

import (
	"sort"
	"sync"
	"time"
)

type Scheduler interface {
	Now() time.Time
	// AfterFunc runs fn on its own goroutine once d has elapsed. Callbacks
	// must re-validate their preconditions: the session may have ended and
	// the target entity may be gone by the time they fire.
	AfterFunc(d time.Duration, fn func())
}

type wallClock struct{}

// New returns the real-time scheduler.
func New() Scheduler {
	return wallClock{}
}

func (wallClock) Now() time.Time { return time.Now() }

func (wallClock) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Virtual is a manually advanced scheduler for tests. Callbacks run
// synchronously inside Advance, in due order.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	queue  []virtualTimer
	nextID int
}

type virtualTimer struct {
	id  int
	due time.Time
	fn  func()
}

func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *Virtual) AfterFunc(d time.Duration, fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nextID++
	v.queue = append(v.queue, virtualTimer{id: v.nextID, due: v.now.Add(d), fn: fn})
}

// Advance moves the clock forward and fires every callback that came due,
// ordered by due time then registration order.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	v.now = v.now.Add(d)
	deadline := v.now

	var due, rest []virtualTimer
	for _, t := range v.queue {
		if !t.due.After(deadline) {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	v.queue = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	v.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}
