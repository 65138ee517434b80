package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Controller drives one linear multi-step form: step position, field values,
// validation errors and the submission lifecycle.
type Controller struct {
	mu        sync.Mutex
	form      *Form
	submitter Submitter
	timeout   time.Duration
	state     FormState
	// generation changes on every reset so a late submission outcome
	// cannot overwrite a fresh form.
	generation uint64
	// inflight stays set until the submitter returns, across resets.
	inflight bool
}

func NewController(form *Form, submitter Submitter) *Controller {
	return &Controller{
		form:      form,
		submitter: submitter,
		state:     newFormState(form),
	}
}

// SetSubmitTimeout bounds the submission call; zero means no bound.
func (c *Controller) SetSubmitTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}

func (c *Controller) Form() *Form {
	return c.form
}

// State returns a deep copy of the current form state.
func (c *Controller) State() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// SetField stores a value and clears any error recorded for the field.
// Names the form does not declare are ignored.
func (c *Controller) SetField(name string, value Value) {
	field, ok := c.form.Field(name)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Fields[name] = field.coerce(value)
	delete(c.state.Errors, name)
}

// AdvanceStep moves to the next step when every required field of the
// current step is valid. It reports whether the step changed.
func (c *Controller) AdvanceStep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentStep >= c.form.StepCount() {
		return false
	}

	errs := validateFields(c.form.stepFields(c.state.CurrentStep), c.state.Fields)
	if len(errs) > 0 {
		c.state.Errors = errs
		return false
	}

	c.state.CurrentStep++
	c.state.Errors = make(map[string]string)
	return true
}

// RetreatStep moves one step back without validation; no-op at step 1.
func (c *Controller) RetreatStep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentStep > 1 {
		c.state.CurrentStep--
	}
}

// Submit validates the form and hands the payload to the submitter.
// At most one submitter call is running at a time, even across Reset or
// after a timeout; a call while one is running returns ErrSubmitInFlight
// without reaching the submitter.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()

	if c.inflight {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	switch c.state.Submission {
	case SubmissionSubmitting:
		c.mu.Unlock()
		return ErrSubmitInFlight
	case SubmissionSucceeded:
		c.mu.Unlock()
		return ErrAlreadySubmitted
	}

	if c.state.CurrentStep != c.form.StepCount() {
		c.mu.Unlock()
		return ErrNotFinalStep
	}

	errs := make(map[string]string)
	for k := 1; k <= c.form.StepCount(); k++ {
		for name, msg := range validateFields(c.form.stepFields(k), c.state.Fields) {
			errs[name] = msg
		}
	}
	if len(errs) > 0 {
		c.state.Errors = errs
		c.mu.Unlock()
		return &ValidationError{Fields: copyErrors(errs)}
	}

	next, err := transition(c.state.Submission, eventSubmit)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.state.Submission = next
	c.state.Errors = make(map[string]string)

	submission := Submission{
		Form:    c.form.ID,
		Payload: c.state.Payload(),
	}
	if id, ok := SessionIDFromContext(ctx); ok {
		submission.Session = id
	}
	generation := c.generation
	timeout := c.timeout
	submitter := c.submitter
	if submitter != nil {
		c.inflight = true
	}
	c.mu.Unlock()

	callErr := c.call(ctx, submitter, submission, timeout)

	c.mu.Lock()
	defer c.mu.Unlock()

	event := eventSucceed
	if callErr != nil {
		event = eventFail
	}
	if generation == c.generation {
		if next, err = transition(c.state.Submission, event); err == nil {
			c.state.Submission = next
		}
	}

	if callErr != nil {
		return &SubmissionError{Err: callErr}
	}
	return nil
}

func (c *Controller) call(ctx context.Context, submitter Submitter, s Submission, timeout time.Duration) error {
	if submitter == nil {
		return fmt.Errorf("no submitter configured")
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		err := submitter.Submit(ctx, s)
		c.mu.Lock()
		c.inflight = false
		c.mu.Unlock()
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("submission interrupted: %w", ctx.Err())
	}
}

// Reset returns the form to the state of a freshly constructed controller.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = newFormState(c.form)
	c.generation++
}

func copyErrors(errs map[string]string) map[string]string {
	out := make(map[string]string, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
