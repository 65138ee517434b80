package forms

import "CorpSite/internal/wizard"

const JoinID = "join"

var positions = []wizard.Option{
	{Value: "engineer", Label: "Software Engineer"},
	{Value: "designer", Label: "Designer"},
	{Value: "sales", Label: "Sales"},
	{Value: "consultant", Label: "Consultant"},
	{Value: "other", Label: "Other"},
}

var interests = []wizard.Option{
	{Value: "web", Label: "Web development"},
	{Value: "mobile", Label: "Mobile apps"},
	{Value: "data", Label: "Data & AI"},
	{Value: "infra", Label: "Cloud infrastructure"},
	{Value: "business", Label: "Business development"},
}

// Join is the three-step recruiting application.
func Join() *wizard.Form {
	return &wizard.Form{
		ID:    JoinID,
		Title: "Join us",
		Steps: []wizard.Step{
			{
				Title: "Profile",
				Fields: []wizard.Field{
					{Name: "name", Label: "Full name", Kind: wizard.KindText, Required: true, Tag: "max=100"},
					{Name: "email", Label: "Email", Kind: wizard.KindEmail, Required: true},
					{Name: "phone", Label: "Phone", Kind: wizard.KindText},
				},
			},
			{
				Title: "Career",
				Fields: []wizard.Field{
					{Name: "position", Label: "Desired position", Kind: wizard.KindChoice, Required: true, Options: positions},
					{Name: "interests", Label: "Areas of interest", Kind: wizard.KindMultiChoice, Required: true, Options: interests},
					{Name: "experience", Label: "Work experience", Kind: wizard.KindText},
				},
			},
			{
				Title: "Motivation",
				Fields: []wizard.Field{
					{
						Name:     "motivation",
						Label:    "Why do you want to join?",
						Kind:     wizard.KindText,
						Required: true,
						Tag:      "max=2000",
						Hint:     "Please keep it under 2000 characters",
					},
					{Name: "referral", Label: "How did you hear about us?", Kind: wizard.KindText},
				},
			},
		},
	}
}
