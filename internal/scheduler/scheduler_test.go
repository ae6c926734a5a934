package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVirtualAdvanceFiresDueCallbacks(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	v := NewVirtual(start)

	var fired []string
	v.AfterFunc(2*time.Second, func() { fired = append(fired, "late") })
	v.AfterFunc(time.Second, func() { fired = append(fired, "early") })

	v.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)

	v.Advance(time.Second)
	assert.Equal(t, []string{"early"}, fired)

	v.Advance(time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, start.Add(2500*time.Millisecond), v.Now())
}

func TestVirtualSameDeadlineKeepsRegistrationOrder(t *testing.T) {
	v := NewVirtual(time.Now())

	var fired []int
	for i := 1; i <= 3; i++ {
		i := i
		v.AfterFunc(time.Second, func() { fired = append(fired, i) })
	}
	v.Advance(time.Second)
	assert.Equal(t, []int{1, 2, 3}, fired)
}

func TestVirtualCallbackMayReschedule(t *testing.T) {
	v := NewVirtual(time.Now())

	chained := false
	v.AfterFunc(time.Second, func() {
		v.AfterFunc(time.Second, func() { chained = true })
	})

	v.Advance(time.Second)
	assert.False(t, chained)
	v.Advance(time.Second)
	assert.True(t, chained)
}
