package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs the shared validator over a request payload.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}
