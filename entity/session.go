package entity

import "CorpSite/internal/wizard"

// SessionView is a wizard session as the browser sees it.
type SessionView struct {
	ID       string           `json:"session_id"`
	Form     string           `json:"form"`
	State    wizard.FormState `json:"state"`
	Advanced *bool            `json:"advanced,omitempty"`
}

func NewSessionView(id, form string, state wizard.FormState) *SessionView {
	return &SessionView{
		ID:    id,
		Form:  form,
		State: state,
	}
}
