package core

import (
	"CorpSite/internal/countdown"
	"CorpSite/internal/faq"
	"CorpSite/internal/hero"
	"CorpSite/internal/ws"
	"context"
	"fmt"
)

const contactForm = "contact"

// ReceiveContact passes a raw contact payload to the inbox.
func (c *Core) ReceiveContact(ctx context.Context, payload map[string]any) (string, error) {
	if c.inbox == nil {
		return "", fmt.Errorf("inbox not initialized")
	}
	return c.inbox.Receive(ctx, contactForm, "", payload)
}

func (c *Core) SearchFaq(query, category string, page, perPage int) (*faq.Page, error) {
	catalog, err := c.catalog()
	if err != nil {
		return nil, err
	}
	result := faq.Paginate(catalog.Search(query, category), page, perPage)
	return &result, nil
}

func (c *Core) FaqCategories() ([]string, error) {
	catalog, err := c.catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Categories(), nil
}

func (c *Core) catalog() (*faq.Catalog, error) {
	if c.faq == nil || c.faq.Catalog() == nil {
		return nil, fmt.Errorf("faq catalog not loaded")
	}
	return c.faq.Catalog(), nil
}

// Countdown reports the time left until the bootcamp deadline.
func (c *Core) Countdown() (*countdown.Parts, error) {
	if c.deadline.IsZero() {
		return nil, fmt.Errorf("bootcamp deadline not configured")
	}
	parts := countdown.Remaining(c.now(), c.deadline)
	return &parts, nil
}

func (c *Core) HeroState() (*hero.State, error) {
	if c.hero == nil {
		return nil, fmt.Errorf("hero schedule not running")
	}
	st := c.hero.State()
	return &st, nil
}

// Snapshot is what a browser receives right after connecting to the hub.
func (c *Core) Snapshot() []*ws.Event {
	var events []*ws.Event
	if st, err := c.HeroState(); err == nil {
		events = append(events, &ws.Event{Type: "hero", Data: hero.Event{State: *st}})
	}
	if parts, err := c.Countdown(); err == nil {
		events = append(events, &ws.Event{Type: "countdown", Data: parts})
	}
	return events
}
