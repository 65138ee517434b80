package forms

import "CorpSite/internal/wizard"

type Core interface {
	Forms() []*wizard.Form
	Form(id string) (*wizard.Form, error)
}
