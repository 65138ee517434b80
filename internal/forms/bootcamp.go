package forms

import "CorpSite/internal/wizard"

const BootcampID = "bootcamp"

// Bootcamp is the entry form at the end of the bootcamp funnel.
func Bootcamp() *wizard.Form {
	return &wizard.Form{
		ID:    BootcampID,
		Title: "Bootcamp entry",
		Steps: []wizard.Step{
			{
				Title: "Applicant",
				Fields: []wizard.Field{
					{Name: "name", Label: "Full name", Kind: wizard.KindText, Required: true, Tag: "max=100"},
					{Name: "email", Label: "Email", Kind: wizard.KindEmail, Required: true},
					{Name: "school", Label: "School or company", Kind: wizard.KindText},
				},
			},
			{
				Title: "Schedule",
				Fields: []wizard.Field{
					{Name: "cohort", Label: "Cohort", Kind: wizard.KindChoice, Required: true, Options: []wizard.Option{
						{Value: "spring", Label: "Spring cohort"},
						{Value: "summer", Label: "Summer cohort"},
						{Value: "autumn", Label: "Autumn cohort"},
					}},
					{Name: "goals", Label: "What do you want to get out of it?", Kind: wizard.KindMultiChoice, Required: true, Options: []wizard.Option{
						{Value: "skills", Label: "Learn practical skills"},
						{Value: "career", Label: "Explore a career with us"},
						{Value: "network", Label: "Meet other participants"},
					}},
				},
			},
		},
	}
}
