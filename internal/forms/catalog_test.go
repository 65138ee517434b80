package forms

import (
	"context"
	"testing"

	"CorpSite/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Valid(t *testing.T) {
	ids := make(map[string]bool)
	for _, f := range Catalog() {
		require.NoError(t, f.Validate(), f.ID)
		assert.False(t, ids[f.ID], "duplicate form id %s", f.ID)
		ids[f.ID] = true
	}
	assert.Equal(t, map[string]bool{JoinID: true, BootcampID: true, ContactID: true}, ids)
}

func TestJoin_HasThreeSteps(t *testing.T) {
	assert.Equal(t, 3, Join().StepCount())
	assert.Equal(t, 2, Bootcamp().StepCount())
	assert.Equal(t, 1, Contact().StepCount())
}

func TestJoin_Walkthrough(t *testing.T) {
	var got wizard.Submission
	c := wizard.NewController(Join(), wizard.SubmitterFunc(func(_ context.Context, s wizard.Submission) error {
		got = s
		return nil
	}))

	c.SetField("name", wizard.Text("Taro Yamada"))
	c.SetField("email", wizard.Text("taro@example.com"))
	require.True(t, c.AdvanceStep())

	c.SetField("position", wizard.Choice("engineer"))
	c.SetField("interests", wizard.Choices("web", "infra"))
	require.True(t, c.AdvanceStep())

	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'a'
	}
	c.SetField("motivation", wizard.Text(string(long)))
	err := c.Submit(context.Background())
	var vErr *wizard.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please keep it under 2000 characters", vErr.Fields["motivation"])

	c.SetField("motivation", wizard.Text("I enjoy building products."))
	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, JoinID, got.Form)
	assert.Equal(t, "engineer", got.Payload["position"])
}

func TestContact_DefaultSubject(t *testing.T) {
	c := wizard.NewController(Contact(), nil)
	assert.Equal(t, wizard.Choice("general"), c.State().Fields["subject"])
}
