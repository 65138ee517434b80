package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a form payload accepted by the inbox.
type Submission struct {
	ID         string         `json:"id"`
	Form       string         `json:"form"`
	Session    string         `json:"session,omitempty"`
	Payload    map[string]any `json:"payload"`
	ReceivedAt time.Time      `json:"received_at"`
}

func NewSubmission(form, session string, payload map[string]any) *Submission {
	return &Submission{
		ID:         uuid.NewString(),
		Form:       form,
		Session:    session,
		Payload:    payload,
		ReceivedAt: time.Now(),
	}
}
