package session

import (
	"CorpSite/entity"
	"CorpSite/internal/wizard"
	"context"
)

type Core interface {
	StartSession(ctx context.Context, formID string) (*entity.SessionView, error)
	SessionState(ctx context.Context, id string) (*entity.SessionView, error)
	SetField(ctx context.Context, id, name string, value wizard.Value) (*entity.SessionView, error)
	NextStep(ctx context.Context, id string) (*entity.SessionView, error)
	PreviousStep(ctx context.Context, id string) (*entity.SessionView, error)
	SubmitSession(ctx context.Context, id string) (*entity.SessionView, error)
	ResetSession(ctx context.Context, id string) (*entity.SessionView, error)
	DiscardSession(ctx context.Context, id string) error
}
