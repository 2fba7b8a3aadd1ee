// Package validation wraps go-playground/validator with the field-error
// shape the API reports: one entry per rejected field, named by its JSON key.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected field.
type FieldError struct {
	Field   string
	Message string
	Type    string
}

// Error is returned when a request fails validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Single builds an Error for one field.
func Single(field, msg, typ string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: msg, Type: typ}}}
}

// Validator checks tagged request structs.
type Validator struct {
	v      *validator.Validate
	domain string
}

// New returns a Validator with the custom rules registered:
//
//	institutional   the string ends with domain (case-insensitive)
//	strongpassword  upper and lower case letter, a digit and a symbol
func New(domain string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("institutional", func(fl validator.FieldLevel) bool {
		return strings.HasSuffix(strings.ToLower(fl.Field().String()), strings.ToLower(domain))
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})

	return &Validator{v: v, domain: domain}
}

// StrongPassword reports whether pw mixes upper and lower case letters,
// digits and symbols.
func StrongPassword(pw string) bool {
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// Struct validates s. Rule violations come back as *Error; anything else
// (a non-struct argument) is returned as is.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg, typ := val.describe(fe)
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg, Type: typ})
	}
	return out
}

func (val *Validator) describe(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return "Field required", "missing"
	case "email":
		return "value is not a valid email address", "value_error"
	case "institutional":
		return "Email must end with " + val.domain, "value_error"
	case "strongpassword":
		return "Password must contain an uppercase letter, a lowercase letter, a digit and a special character", "value_error"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param()), "string_too_short"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param()), "string_too_long"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", "), "enum"
	}
	return "Invalid value", "value_error"
}
