package countdown

import (
	"context"
	"time"
)

// Parts is the time left until a deadline, split for display.
type Parts struct {
	Deadline time.Time `json:"deadline"`
	Days     int       `json:"days"`
	Hours    int       `json:"hours"`
	Minutes  int       `json:"minutes"`
	Seconds  int       `json:"seconds"`
	Expired  bool      `json:"expired"`
}

// Remaining splits deadline-now into whole units. Partial seconds are
// dropped, so the display reaches zero exactly at the deadline.
func Remaining(now, deadline time.Time) Parts {
	left := deadline.Sub(now)
	if left <= 0 {
		return Parts{Deadline: deadline, Expired: true}
	}

	total := int64(left / time.Second)
	return Parts{
		Deadline: deadline,
		Days:     int(total / 86400),
		Hours:    int(total % 86400 / 3600),
		Minutes:  int(total % 3600 / 60),
		Seconds:  int(total % 60),
	}
}

// Publisher receives timer events for connected browsers.
type Publisher interface {
	Publish(eventType string, data any)
}

// Ticker publishes the remaining time once per interval until ctx ends or
// the deadline passes.
type Ticker struct {
	deadline  time.Time
	interval  time.Duration
	publisher Publisher
	now       func() time.Time
}

func NewTicker(deadline time.Time, publisher Publisher) *Ticker {
	return &Ticker{
		deadline:  deadline,
		interval:  time.Second,
		publisher: publisher,
		now:       time.Now,
	}
}

// Run blocks; the last event published carries Expired.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		parts := Remaining(t.now(), t.deadline)
		t.publisher.Publish("countdown", parts)
		if parts.Expired {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
