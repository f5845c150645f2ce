// Package validation checks request schemas declared with go-playground
// validator tags and turns violations into user-facing messages.
//
// A field declares its message for a failed rule with a `msg_<rule>` tag:
//
//	Title *string `json:"title" validate:"required,min=1" msg_required:"A title is required" msg_min:"Please provide a title"`
//
// Required text fields are pointers so an absent field (required) can be told
// apart from an empty one (min=1). The notblank rule also rejects values made
// only of whitespace.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator validates request structs.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	return &Validator{validate: validate}
}

// Struct validates s and returns one message per violated field, in field
// order. It returns nil when s is valid.
func (v *Validator) Struct(s any) ([]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("failed to validate %T: %w", s, err)
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(t, fe))
	}
	return messages, nil
}

func message(t reflect.Type, fe validator.FieldError) string {
	field, ok := t.FieldByName(fe.StructField())
	if !ok {
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	if msg := field.Tag.Get("msg_" + fe.Tag()); msg != "" {
		return msg
	}
	return fmt.Sprintf("%s failed on the %q rule", jsonName(field), fe.Tag())
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
