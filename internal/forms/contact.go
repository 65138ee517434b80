package forms

import "CorpSite/internal/wizard"

const ContactID = "contact"

// Contact is the single-step general enquiry form.
func Contact() *wizard.Form {
	return &wizard.Form{
		ID:    ContactID,
		Title: "Contact",
		Steps: []wizard.Step{
			{
				Title: "Enquiry",
				Fields: []wizard.Field{
					{Name: "name", Label: "Name", Kind: wizard.KindText, Required: true},
					{Name: "company", Label: "Company", Kind: wizard.KindText},
					{Name: "email", Label: "Email", Kind: wizard.KindEmail, Required: true},
					{Name: "subject", Label: "Subject", Kind: wizard.KindChoice, Required: true, Default: wizard.Choice("general"), Options: []wizard.Option{
						{Value: "general", Label: "General enquiry"},
						{Value: "business", Label: "Business partnership"},
						{Value: "recruiting", Label: "Recruiting"},
						{Value: "ir", Label: "Investor relations"},
						{Value: "press", Label: "Press"},
					}},
					{Name: "message", Label: "Message", Kind: wizard.KindText, Required: true, Tag: "max=4000"},
				},
			},
		},
	}
}
