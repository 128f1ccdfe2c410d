package model

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Field error codes reported by FullClean
const (
	MsgRequired      = "required"
	MsgMaxLength     = "max_length"
	MsgInvalidChoice = "invalid_choice"
	MsgInvalidEmail  = "invalid_email"
	MsgDoesNotExist  = "does_not_exist"
	MsgInvalid       = "invalid"
)

// ValidationError collects every failing field of a record, keyed by its JSON field name
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// NewValidationError returns a ValidationError holding a single field failure
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{Fields: make(map[string][]string)}
	e.Add(field, message)
	return e
}

// Add records message against field
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Has reports whether field failed validation
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// registration only fails for an empty or reserved tag name
		_ = validate.RegisterValidation("email_address", validateEmailAddress)
	})
	return validate
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return MsgRequired
	case "max":
		return MsgMaxLength
	case "oneof":
		return MsgInvalidChoice
	case "email", "email_address":
		return MsgInvalidEmail
	default:
		return MsgInvalid
	}
}

// fullClean runs the struct tag rules of v and converts failures into a *ValidationError
func fullClean(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string][]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), messageFor(fe.Tag()))
	}
	return out
}
