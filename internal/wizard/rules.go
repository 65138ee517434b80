package wizard

import (
	"strings"

	"CorpSite/internal/lib/validate"
)

const (
	MsgRequired    = "This field is required"
	MsgEmail       = "Enter a valid email address"
	MsgChoice      = "Select one of the options"
	MsgMultiChoice = "Select at least one option"
	MsgInvalid     = "Enter a valid value"
)

// checkField applies the rule for the field kind. Optional fields always pass.
func checkField(f Field, v Value) (string, bool) {
	if !f.Required {
		return "", true
	}

	switch f.Kind {
	case KindText:
		text := strings.TrimSpace(v.Text)
		if text == "" {
			return MsgRequired, false
		}
		return checkTag(f, text)
	case KindEmail:
		text := strings.TrimSpace(v.Text)
		if text == "" {
			return MsgRequired, false
		}
		if validate.Var(text, "email") != nil {
			return MsgEmail, false
		}
		return checkTag(f, text)
	case KindChoice:
		if !f.hasOption(strings.TrimSpace(v.Text)) {
			return MsgChoice, false
		}
		return "", true
	case KindMultiChoice:
		if len(v.Items) == 0 {
			return MsgMultiChoice, false
		}
		for _, item := range v.Items {
			if !f.hasOption(item) {
				return MsgMultiChoice, false
			}
		}
		return checkTag(f, v.Items)
	}
	return MsgInvalid, false
}

func checkTag(f Field, value any) (string, bool) {
	if f.Tag == "" {
		return "", true
	}
	if validate.Var(value, f.Tag) != nil {
		if f.Hint != "" {
			return f.Hint, false
		}
		return MsgInvalid, false
	}
	return "", true
}

// validateFields returns one message per failing field.
func validateFields(fields []Field, values map[string]Value) map[string]string {
	errs := make(map[string]string)
	for _, f := range fields {
		if msg, ok := checkField(f, values[f.Name]); !ok {
			errs[f.Name] = msg
		}
	}
	return errs
}
