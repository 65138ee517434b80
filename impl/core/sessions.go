package core

import (
	"CorpSite/entity"
	"CorpSite/internal/wizard"
	"context"
	"fmt"
)

var errNoEngine = fmt.Errorf("wizard engine not initialized")

func (c *Core) Forms() []*wizard.Form {
	if c.engine == nil {
		return nil
	}
	return c.engine.Forms()
}

func (c *Core) Form(id string) (*wizard.Form, error) {
	if c.engine == nil {
		return nil, errNoEngine
	}
	form, ok := c.engine.Form(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", wizard.ErrFormNotFound, id)
	}
	return form, nil
}

func (c *Core) StartSession(ctx context.Context, formID string) (*entity.SessionView, error) {
	if c.engine == nil {
		return nil, errNoEngine
	}
	session, err := c.engine.Start(ctx, formID)
	if err != nil {
		return nil, err
	}
	return entity.NewSessionView(session.ID, session.FormID, session.Controller.State()), nil
}

func (c *Core) SessionState(ctx context.Context, id string) (*entity.SessionView, error) {
	if c.engine == nil {
		return nil, errNoEngine
	}
	session, err := c.engine.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	return entity.NewSessionView(session.ID, session.FormID, session.Controller.State()), nil
}

func (c *Core) SetField(ctx context.Context, id, name string, value wizard.Value) (*entity.SessionView, error) {
	return c.apply(ctx, id, func() (wizard.FormState, error) {
		return c.engine.SetField(ctx, id, name, value)
	})
}

func (c *Core) NextStep(ctx context.Context, id string) (*entity.SessionView, error) {
	var advanced bool
	view, err := c.apply(ctx, id, func() (wizard.FormState, error) {
		var state wizard.FormState
		var err error
		advanced, state, err = c.engine.Advance(ctx, id)
		return state, err
	})
	if view != nil {
		view.Advanced = &advanced
	}
	return view, err
}

func (c *Core) PreviousStep(ctx context.Context, id string) (*entity.SessionView, error) {
	return c.apply(ctx, id, func() (wizard.FormState, error) {
		return c.engine.Retreat(ctx, id)
	})
}

func (c *Core) SubmitSession(ctx context.Context, id string) (*entity.SessionView, error) {
	return c.apply(ctx, id, func() (wizard.FormState, error) {
		return c.engine.Submit(ctx, id)
	})
}

func (c *Core) ResetSession(ctx context.Context, id string) (*entity.SessionView, error) {
	return c.apply(ctx, id, func() (wizard.FormState, error) {
		return c.engine.Reset(ctx, id)
	})
}

func (c *Core) DiscardSession(ctx context.Context, id string) error {
	if c.engine == nil {
		return errNoEngine
	}
	return c.engine.Discard(ctx, id)
}

// apply runs op on a known session and wraps its state. The view is
// returned with the error so callers can render the state after a failed
// submission.
func (c *Core) apply(ctx context.Context, id string, op func() (wizard.FormState, error)) (*entity.SessionView, error) {
	if c.engine == nil {
		return nil, errNoEngine
	}
	session, err := c.engine.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	state, err := op()
	return entity.NewSessionView(id, session.FormID, state), err
}
