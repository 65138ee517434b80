package hero

import (
	"context"
	"sync"
	"time"
)

// Publisher receives timer events for connected browsers.
type Publisher interface {
	Publish(eventType string, data any)
}

// Event is what connected browsers receive on every change.
type Event struct {
	State   State    `json:"state"`
	Effects []Effect `json:"effects"`
}

// Scheduler owns the hero state and runs the schedule against the clock,
// publishing effects as they fall due.
type Scheduler struct {
	schedule  Schedule
	publisher Publisher
	interval  time.Duration
	now       func() time.Time

	mu    sync.RWMutex
	state State
}

func NewScheduler(schedule Schedule, publisher Publisher) *Scheduler {
	s := &Scheduler{
		schedule:  schedule,
		publisher: publisher,
		interval:  100 * time.Millisecond,
		now:       time.Now,
	}
	s.state = State{Active: First, Since: s.now()}
	return s
}

// State returns the state as of now without publishing.
func (s *Scheduler) State() State {
	s.mu.RLock()
	st := s.state
	s.mu.RUnlock()

	st, _ = s.schedule.Update(st, s.now())
	return st
}

// Run blocks until ctx ends.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.step(s.now())
		}
	}
}

func (s *Scheduler) step(now time.Time) {
	s.mu.Lock()
	st, effects := s.schedule.Update(s.state, now)
	s.state = st
	s.mu.Unlock()

	if len(effects) > 0 && s.publisher != nil {
		s.publisher.Publish("hero", Event{State: st, Effects: effects})
	}
}
