package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is the content of a single form field: Text for free text, email and
// single choice fields, Items for multi choice fields.
type Value struct {
	Text  string
	Items []string
	Multi bool
}

func Text(s string) Value {
	return Value{Text: s}
}

func Choice(option string) Value {
	return Value{Text: option}
}

func Choices(options ...string) Value {
	return Value{Items: options, Multi: true}
}

// Payload returns the value in the shape sent to the submission boundary.
func (v Value) Payload() any {
	if v.Multi {
		items := make([]string, len(v.Items))
		copy(items, v.Items)
		return items
	}
	return v.Text
}

func (v Value) clone() Value {
	out := Value{Text: v.Text, Multi: v.Multi}
	if v.Items != nil {
		out.Items = make([]string, len(v.Items))
		copy(out.Items, v.Items)
	}
	return out
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Payload())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Value{}
		return nil
	case len(data) > 0 && data[0] == '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode choices: %w", err)
		}
		*v = Value{Items: items, Multi: true}
		return nil
	default:
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decode text: %w", err)
		}
		*v = Value{Text: text}
		return nil
	}
}
