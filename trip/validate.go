package trip

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a record against its `validate` tags.
func Validate(v any) error {
	return validate.Struct(v)
}
