package wizard

import "context"

// Submission is what the controller hands to the submission boundary.
type Submission struct {
	Form    string         `json:"form"`
	Session string         `json:"session,omitempty"`
	Payload map[string]any `json:"payload"`
}

// Submitter is the submission boundary. Submit resolves exactly once,
// nil on success.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, s Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

type sessionKeyContext struct{}

// WithSessionID tags ctx with the wizard session a submission belongs to.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKeyContext{}, id)
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKeyContext{}).(string)
	return id, ok
}
