package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_Validate(t *testing.T) {
	require.NoError(t, testForm().Validate())

	tests := []struct {
		name   string
		mutate func(f *Form)
		errMsg string
	}{
		{"empty id", func(f *Form) { f.ID = "" }, "form id is empty"},
		{"no steps", func(f *Form) { f.Steps = nil }, "no steps"},
		{"empty step", func(f *Form) { f.Steps[1].Fields = nil }, "step 2 has no fields"},
		{"duplicate field", func(f *Form) { f.Steps[2].Fields[1].Name = "name" }, `duplicate field "name"`},
		{"choice without options", func(f *Form) { f.Steps[1].Fields[0].Options = nil }, `field "position": no options`},
		{"unknown kind", func(f *Form) { f.Steps[0].Fields[0].Kind = "date" }, `unknown kind "date"`},
		{"unnamed field", func(f *Form) { f.Steps[0].Fields[0].Name = "" }, "field without name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testForm()
			tt.mutate(f)
			err := f.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestForm_Field(t *testing.T) {
	f := testForm()

	field, ok := f.Field("interests")
	require.True(t, ok)
	assert.Equal(t, KindMultiChoice, field.Kind)

	_, ok = f.Field("missing")
	assert.False(t, ok)

	assert.Nil(t, f.stepFields(0))
	assert.Nil(t, f.stepFields(4))
	assert.Len(t, f.stepFields(3), 2)
}
