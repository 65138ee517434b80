package forms

import "CorpSite/internal/wizard"

// Catalog returns every form the site offers.
func Catalog() []*wizard.Form {
	return []*wizard.Form{
		Join(),
		Bootcamp(),
		Contact(),
	}
}
