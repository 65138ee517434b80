package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"CorpSite/internal/lib/sl"

	"github.com/google/uuid"
)

// Stats are counters reported by the admin bot.
type Stats struct {
	ActiveSessions int   `json:"active_sessions"`
	Started        int64 `json:"started"`
	Submitted      int64 `json:"submitted"`
	Failed         int64 `json:"failed"`
}

// Observer is told about session starts and submit attempts. Result is
// one of "succeeded", "failed" or "rejected".
type Observer interface {
	SessionStarted(form string)
	SubmissionFinished(form, result string, elapsed time.Duration)
}

// Engine manages form definitions and the wizard sessions driving them.
// Forms are registered before the engine starts serving requests.
type Engine struct {
	forms         map[string]*Form
	storage       SessionStorage
	submitter     Submitter
	submitTimeout time.Duration
	observer      Observer
	log           *slog.Logger

	started   atomic.Int64
	submitted atomic.Int64
	failed    atomic.Int64
}

func NewEngine(storage SessionStorage, submitter Submitter, log *slog.Logger) *Engine {
	return &Engine{
		forms:     make(map[string]*Form),
		storage:   storage,
		submitter: submitter,
		log:       log.With(sl.Module("wizard.engine")),
	}
}

func (e *Engine) SetSubmitTimeout(d time.Duration) {
	e.submitTimeout = d
}

func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// RegisterForm adds a form definition after checking it.
func (e *Engine) RegisterForm(f *Form) error {
	if err := f.Validate(); err != nil {
		return err
	}
	e.forms[f.ID] = f
	e.log.Info("registered form",
		slog.String("form_id", f.ID),
		slog.Int("steps", f.StepCount()),
	)
	return nil
}

func (e *Engine) Form(id string) (*Form, bool) {
	f, ok := e.forms[id]
	return f, ok
}

// Forms returns the registered forms ordered by id.
func (e *Engine) Forms() []*Form {
	forms := make([]*Form, 0, len(e.forms))
	for _, f := range e.forms {
		forms = append(forms, f)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].ID < forms[j].ID })
	return forms
}

// Start creates a fresh session for a form.
func (e *Engine) Start(ctx context.Context, formID string) (*Session, error) {
	f, ok := e.forms[formID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormNotFound, formID)
	}

	controller := NewController(f, e.submitter)
	controller.SetSubmitTimeout(e.submitTimeout)
	session := NewSession(uuid.NewString(), controller)

	if err := e.storage.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving new session: %w", err)
	}
	e.started.Add(1)
	if e.observer != nil {
		e.observer.SessionStarted(formID)
	}

	e.log.Info("starting session",
		slog.String("session_id", session.ID),
		slog.String("form_id", formID),
	)
	return session, nil
}

// Session loads a live session.
func (e *Engine) Session(ctx context.Context, id string) (*Session, error) {
	session, err := e.storage.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (e *Engine) SetField(ctx context.Context, id, name string, value Value) (FormState, error) {
	session, err := e.Session(ctx, id)
	if err != nil {
		return FormState{}, err
	}
	if _, ok := session.Controller.Form().Field(name); !ok {
		return session.Controller.State(), fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	session.Controller.SetField(name, value)
	return e.touch(ctx, session)
}

// Advance reports whether the session moved to the next step.
func (e *Engine) Advance(ctx context.Context, id string) (bool, FormState, error) {
	session, err := e.Session(ctx, id)
	if err != nil {
		return false, FormState{}, err
	}

	advanced := session.Controller.AdvanceStep()
	state, err := e.touch(ctx, session)
	if err != nil {
		return false, state, err
	}

	e.log.Debug("advance step",
		slog.String("session_id", id),
		slog.Bool("advanced", advanced),
		slog.Int("step", state.CurrentStep),
		slog.Int("errors", len(state.Errors)),
	)
	return advanced, state, nil
}

func (e *Engine) Retreat(ctx context.Context, id string) (FormState, error) {
	session, err := e.Session(ctx, id)
	if err != nil {
		return FormState{}, err
	}
	session.Controller.RetreatStep()
	return e.touch(ctx, session)
}

// Submit runs the session's submission. The call is detached from the
// caller's cancellation; the controller's own timeout bounds it.
func (e *Engine) Submit(ctx context.Context, id string) (FormState, error) {
	session, err := e.Session(ctx, id)
	if err != nil {
		return FormState{}, err
	}

	submitCtx := WithSessionID(context.WithoutCancel(ctx), id)
	started := time.Now()
	submitErr := session.Controller.Submit(submitCtx)
	elapsed := time.Since(started)

	logger := e.log.With(
		slog.String("session_id", id),
		slog.String("form_id", session.FormID),
	)

	var subErr *SubmissionError
	result := "rejected"
	switch {
	case submitErr == nil:
		result = "succeeded"
		e.submitted.Add(1)
		logger.Info("form submitted")
	case errors.As(submitErr, &subErr):
		result = "failed"
		e.failed.Add(1)
		logger.Error("form submission failed", sl.Err(submitErr))
	default:
		elapsed = 0
		logger.Debug("form not submitted", sl.Err(submitErr))
	}
	if e.observer != nil {
		e.observer.SubmissionFinished(session.FormID, result, elapsed)
	}

	// a session discarded while the submission ran stays discarded
	exists, err := e.storage.Exists(ctx, id)
	if err != nil {
		return session.Controller.State(), fmt.Errorf("checking session: %w", err)
	}
	if !exists {
		logger.Debug("session discarded during submission")
		return session.Controller.State(), submitErr
	}

	state, err := e.touch(ctx, session)
	if err != nil {
		return state, err
	}
	return state, submitErr
}

func (e *Engine) Reset(ctx context.Context, id string) (FormState, error) {
	session, err := e.Session(ctx, id)
	if err != nil {
		return FormState{}, err
	}
	session.Controller.Reset()
	return e.touch(ctx, session)
}

// Discard abandons a session.
func (e *Engine) Discard(ctx context.Context, id string) error {
	exists, err := e.storage.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("checking session: %w", err)
	}
	if !exists {
		return ErrSessionNotFound
	}
	return e.storage.Delete(ctx, id)
}

func (e *Engine) Stats() Stats {
	stats := Stats{
		Started:   e.started.Load(),
		Submitted: e.submitted.Load(),
		Failed:    e.failed.Load(),
	}
	if counter, ok := e.storage.(interface{ Count() int }); ok {
		stats.ActiveSessions = counter.Count()
	}
	return stats
}

// RunJanitor sweeps expired sessions every interval until ctx ends.
// It does nothing when the storage cannot sweep.
func (e *Engine) RunJanitor(ctx context.Context, interval time.Duration) {
	sweeper, ok := e.storage.(interface{ Sweep(time.Time) int })
	if !ok || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := sweeper.Sweep(now); removed > 0 {
				e.log.Debug("expired sessions removed", slog.Int("count", removed))
			}
		}
	}
}

func (e *Engine) touch(ctx context.Context, session *Session) (FormState, error) {
	if err := e.storage.Save(ctx, session); err != nil {
		return session.Controller.State(), fmt.Errorf("saving session: %w", err)
	}
	return session.Controller.State(), nil
}
