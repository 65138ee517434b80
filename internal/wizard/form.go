package wizard

import (
	"errors"
	"fmt"
)

// Step groups the fields shown on one page of a form.
type Step struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Form is a declarative multi-step form definition.
type Form struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Steps []Step `json:"steps"`
}

// StepCount returns N, the number of the final step.
func (f *Form) StepCount() int {
	return len(f.Steps)
}

// Field looks a declared field up by name.
func (f *Form) Field(name string) (Field, bool) {
	for _, s := range f.Steps {
		for _, field := range s.Fields {
			if field.Name == name {
				return field, true
			}
		}
	}
	return Field{}, false
}

// stepFields returns the fields of the 1-based step k.
func (f *Form) stepFields(k int) []Field {
	if k < 1 || k > len(f.Steps) {
		return nil
	}
	return f.Steps[k-1].Fields
}

func (f *Form) defaults() map[string]Value {
	values := make(map[string]Value)
	for _, s := range f.Steps {
		for _, field := range s.Fields {
			values[field.Name] = field.initial()
		}
	}
	return values
}

// Validate checks the definition itself, not user input.
func (f *Form) Validate() error {
	if f.ID == "" {
		return errors.New("form id is empty")
	}
	if len(f.Steps) == 0 {
		return fmt.Errorf("form %s: no steps", f.ID)
	}
	seen := make(map[string]bool)
	for i, s := range f.Steps {
		if len(s.Fields) == 0 {
			return fmt.Errorf("form %s: step %d has no fields", f.ID, i+1)
		}
		for _, field := range s.Fields {
			if field.Name == "" {
				return fmt.Errorf("form %s: step %d: field without name", f.ID, i+1)
			}
			if seen[field.Name] {
				return fmt.Errorf("form %s: duplicate field %q", f.ID, field.Name)
			}
			seen[field.Name] = true
			switch field.Kind {
			case KindText, KindEmail:
			case KindChoice, KindMultiChoice:
				if len(field.Options) == 0 {
					return fmt.Errorf("form %s: field %q: no options", f.ID, field.Name)
				}
			default:
				return fmt.Errorf("form %s: field %q: unknown kind %q", f.ID, field.Name, field.Kind)
			}
		}
	}
	return nil
}
