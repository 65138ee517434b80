package hero

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Publish(eventType string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if eventType == "hero" {
		r.events = append(r.events, data.(Event))
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestScheduler_StepPublishesOnlyChanges(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(testSchedule(), rec)
	s.state = State{Active: First, Since: t0}

	s.step(t0.Add(time.Second))
	assert.Equal(t, 0, rec.count())

	s.step(t0.Add(7 * time.Second))
	require.Equal(t, 1, rec.count())
	assert.True(t, rec.events[0].State.Fading)
	assert.Len(t, rec.events[0].Effects, 3)

	s.step(t0.Add(8 * time.Second))
	require.Equal(t, 2, rec.count())
	assert.Equal(t, Second, rec.events[1].State.Active)
}

func TestScheduler_StateUsesClock(t *testing.T) {
	s := NewScheduler(testSchedule(), nil)
	s.state = State{Active: First, Since: t0}
	s.now = func() time.Time { return t0.Add(9 * time.Second) }

	assert.Equal(t, Second, s.State().Active)
	// State does not commit
	assert.Equal(t, First, s.state.Active)
}

func TestScheduler_Run(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(Schedule{First: 20 * time.Millisecond, Second: 20 * time.Millisecond, Fade: 5 * time.Millisecond}, rec)
	s.interval = 2 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return rec.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
