package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct validates a struct by its `validate` tags.
func Struct(s interface{}) error {
	return get().Struct(s)
}

// Var validates a single value against a tag such as "required,email".
func Var(field interface{}, tag string) error {
	return get().Var(field, tag)
}
