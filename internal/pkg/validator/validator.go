package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a DTO's struct tags and returns field -> failed tag, or nil
// when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
