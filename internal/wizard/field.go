package wizard

// FieldKind selects the validation rule applied to a required field.
type FieldKind string

const (
	KindText        FieldKind = "text"
	KindEmail       FieldKind = "email"
	KindChoice      FieldKind = "choice"
	KindMultiChoice FieldKind = "multi_choice"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field declares one input of a form.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Options  []Option  `json:"options,omitempty"`
	Default  Value     `json:"default"`
	// Tag is an extra validator rule checked on required fields after the kind rule.
	Tag  string `json:"-"`
	Hint string `json:"hint,omitempty"`
}

func (f Field) hasOption(value string) bool {
	for _, o := range f.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func (f Field) initial() Value {
	return f.coerce(f.Default)
}

// coerce shapes v to the field kind so single and multi values never mix.
func (f Field) coerce(v Value) Value {
	v = v.clone()
	if f.Kind == KindMultiChoice {
		if !v.Multi && v.Text != "" {
			v.Items = []string{v.Text}
		}
		v.Text = ""
		v.Multi = true
		return v
	}
	if v.Multi {
		text := ""
		if len(v.Items) > 0 {
			text = v.Items[0]
		}
		return Value{Text: text}
	}
	return v
}
