package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "{field} is required",
	"email":    "{field} must be a valid email address",
	"oneof":    "{field} must be one of {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"len":      "{field} must have length {param}",
	"url":      "{field} must be a valid URL",
	"datetime": "{field} must be a date in format {param}",
}

// message turns the first field error into a sentence a client can act on.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	first := fieldErrs[0]

	tmpl, ok := templates[first.Tag()]
	if !ok {
		return first.Error()
	}

	return strings.NewReplacer("{field}", first.Field(), "{param}", first.Param()).Replace(tmpl)
}
