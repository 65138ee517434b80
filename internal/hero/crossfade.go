package hero

import (
	"errors"
	"time"
)

// ActiveVideo names one of the two hero clips.
type ActiveVideo int

const (
	First ActiveVideo = iota
	Second
)

func (v ActiveVideo) Other() ActiveVideo {
	if v == First {
		return Second
	}
	return First
}

func (v ActiveVideo) String() string {
	if v == First {
		return "first"
	}
	return "second"
}

func (v ActiveVideo) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// State is the cross-fade position. Since is when Active started playing.
type State struct {
	Active ActiveVideo `json:"active"`
	Since  time.Time   `json:"since"`
	Fading bool        `json:"fading"`
}

type EffectKind string

const (
	EffectPlay    EffectKind = "play"
	EffectFadeIn  EffectKind = "fade_in"
	EffectFadeOut EffectKind = "fade_out"
	EffectRewind  EffectKind = "rewind"
)

// Effect is an instruction for the video elements; the schedule never
// touches media itself.
type Effect struct {
	Kind       EffectKind  `json:"kind"`
	Video      ActiveVideo `json:"video"`
	DurationMs int64       `json:"duration_ms,omitempty"`
}

// Schedule holds how long each clip stays on screen and how long the
// opacity swap takes.
type Schedule struct {
	First  time.Duration
	Second time.Duration
	Fade   time.Duration
}

func (s Schedule) Validate() error {
	if s.First <= 0 || s.Second <= 0 {
		return errors.New("hero: clip durations must be positive")
	}
	if s.Fade < 0 {
		return errors.New("hero: fade must not be negative")
	}
	return nil
}

func (s Schedule) duration(v ActiveVideo) time.Duration {
	if v == First {
		return s.First
	}
	return s.Second
}

// fade is clamped below the clip duration so every swap moves time forward.
func (s Schedule) fade(v ActiveVideo) time.Duration {
	d := s.duration(v)
	if s.Fade >= d {
		return d / 2
	}
	return s.Fade
}

func (s Schedule) cycle() time.Duration {
	return s.First - s.fade(First) + s.Second - s.fade(Second)
}

// Update advances st to now and returns the effects to apply. When the
// active clip reaches duration-fade the other clip starts and the fade
// begins; at duration the swap completes.
func (s Schedule) Update(st State, now time.Time) (State, []Effect) {
	if s.Validate() != nil {
		return st, nil
	}

	// Whole cycles end in the same phase; skip them.
	if cycle := s.cycle(); cycle > 0 {
		if elapsed := now.Sub(st.Since); elapsed > 2*cycle {
			st.Since = st.Since.Add((elapsed/cycle - 1) * cycle)
		}
	}

	var effects []Effect
	for {
		d := s.duration(st.Active)
		fade := s.fade(st.Active)
		elapsed := now.Sub(st.Since)
		next := st.Active.Other()

		if !st.Fading && elapsed >= d-fade {
			st.Fading = true
			effects = append(effects,
				Effect{Kind: EffectPlay, Video: next},
				Effect{Kind: EffectFadeIn, Video: next, DurationMs: fade.Milliseconds()},
				Effect{Kind: EffectFadeOut, Video: st.Active, DurationMs: fade.Milliseconds()},
			)
		}
		if st.Fading && elapsed >= d {
			effects = append(effects, Effect{Kind: EffectRewind, Video: st.Active})
			st = State{
				Active: next,
				Since:  st.Since.Add(d - fade),
				Fading: false,
			}
			continue
		}
		return st, effects
	}
}

// At is the state of a schedule that started with First at start.
func (s Schedule) At(start, now time.Time) State {
	st, _ := s.Update(State{Active: First, Since: start}, now)
	return st
}
