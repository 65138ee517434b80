package core

import (
	"CorpSite/internal/faq"
	"CorpSite/internal/hero"
	"CorpSite/internal/lib/sl"
	"CorpSite/internal/wizard"
	"context"
	"log/slog"
	"time"
)

type Engine interface {
	Form(id string) (*wizard.Form, bool)
	Forms() []*wizard.Form
	Start(ctx context.Context, formID string) (*wizard.Session, error)
	Session(ctx context.Context, id string) (*wizard.Session, error)
	SetField(ctx context.Context, id, name string, value wizard.Value) (wizard.FormState, error)
	Advance(ctx context.Context, id string) (bool, wizard.FormState, error)
	Retreat(ctx context.Context, id string) (wizard.FormState, error)
	Submit(ctx context.Context, id string) (wizard.FormState, error)
	Reset(ctx context.Context, id string) (wizard.FormState, error)
	Discard(ctx context.Context, id string) error
	Stats() wizard.Stats
}

type Inbox interface {
	Receive(ctx context.Context, form, session string, payload map[string]any) (string, error)
	Received() int64
}

type FaqSource interface {
	Catalog() *faq.Catalog
}

type HeroClock interface {
	State() hero.State
}

type Audience interface {
	Count() int
}

type Core struct {
	engine   Engine
	inbox    Inbox
	faq      FaqSource
	hero     HeroClock
	audience Audience
	deadline time.Time
	started  time.Time
	now      func() time.Time
	log      *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log:     log.With(sl.Module("core")),
		started: time.Now(),
		now:     time.Now,
	}
}

func (c *Core) SetEngine(engine Engine) {
	c.engine = engine
}

func (c *Core) SetInbox(inbox Inbox) {
	c.inbox = inbox
}

func (c *Core) SetFaq(source FaqSource) {
	c.faq = source
}

func (c *Core) SetHero(clock HeroClock) {
	c.hero = clock
}

func (c *Core) SetAudience(audience Audience) {
	c.audience = audience
}

func (c *Core) SetBootcampDeadline(deadline time.Time) {
	c.deadline = deadline
}
