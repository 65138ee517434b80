package wizard

import (
	"context"
	"sync"
)

func testForm() *Form {
	return &Form{
		ID:    "join",
		Title: "Join us",
		Steps: []Step{
			{
				Title: "Profile",
				Fields: []Field{
					{Name: "name", Label: "Name", Kind: KindText, Required: true},
					{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
				},
			},
			{
				Title: "Career",
				Fields: []Field{
					{Name: "position", Label: "Position", Kind: KindChoice, Required: true, Options: []Option{
						{Value: "engineer", Label: "Engineer"},
						{Value: "designer", Label: "Designer"},
					}},
					{Name: "interests", Label: "Interests", Kind: KindMultiChoice, Required: true, Options: []Option{
						{Value: "web", Label: "Web"},
						{Value: "mobile", Label: "Mobile"},
						{Value: "data", Label: "Data"},
					}},
				},
			},
			{
				Title: "Motivation",
				Fields: []Field{
					{Name: "message", Label: "Message", Kind: KindText, Required: true},
					{Name: "referral", Label: "Referral", Kind: KindText},
				},
			},
		},
	}
}

// fillStep makes every required field of step k valid.
func fillStep(c *Controller, k int) {
	switch k {
	case 1:
		c.SetField("name", Text("Taro"))
		c.SetField("email", Text("taro@example.com"))
	case 2:
		c.SetField("position", Choice("engineer"))
		c.SetField("interests", Choices("web", "data"))
	case 3:
		c.SetField("message", Text("I would like to build things."))
	}
}

func toFinalStep(c *Controller) {
	fillStep(c, 1)
	c.AdvanceStep()
	fillStep(c, 2)
	c.AdvanceStep()
	fillStep(c, 3)
}

type recordingSubmitter struct {
	mu    sync.Mutex
	calls []Submission
	err   error
}

func (r *recordingSubmitter) Submit(_ context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, s)
	return r.err
}

func (r *recordingSubmitter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// blockingSubmitter holds every call until release is closed.
type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	calls   int
	err     error
}

func newBlockingSubmitter() *blockingSubmitter {
	return &blockingSubmitter{
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
}

func (b *blockingSubmitter) Submit(_ context.Context, _ Submission) error {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	b.started <- struct{}{}
	<-b.release
	return b.err
}

func (b *blockingSubmitter) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}
