package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

// CheckoutValidator applies the billing form schema to a CustomerInput.
// It is pure: no side effects, and re-validating an already-valid input
// yields the same value with no errors.
type CheckoutValidator struct {
	v *validator.Validate
}

// NewCheckoutValidator builds the validator with json field names so the
// error map keys match what the form submitted.
func NewCheckoutValidator() *CheckoutValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CheckoutValidator{v: v}
}

// Validate checks every field independently (no cross-field short-circuit)
// and returns either the input or a map from field name to the first
// violated rule's message.
func (cv *CheckoutValidator) Validate(input domain.CustomerInput) (domain.CustomerInput, domain.FieldErrors) {
	err := cv.v.Struct(input)
	if err == nil {
		return input, nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return input, domain.FieldErrors{"form": "invalid input"}
	}

	fields := make(domain.FieldErrors, len(ve))
	for _, fe := range ve {
		if _, seen := fields[fe.Field()]; seen {
			// first violated rule wins
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return input, fields
}

// fieldMessages carries the form's user-facing copy for the rules that
// have bespoke wording; everything else falls back to a generated message.
var fieldMessages = map[string]string{
	"firstName.min":     "First name must be at least 2 characters",
	"lastName.min":      "Last name must be at least 2 characters",
	"streetAddress.min": "Street address must be at least 5 characters",
	"city.required":     "City is required",
	"city.min":          "City is required",
	"province.required": "Province is required",
	"province.oneof":    "Province is required",
	"zipCode.number":    "ZIP code must be a number",
	"phone.number":      "Phone number must be 10 digits",
	"phone.len":         "Phone number must be 10 digits",
	"email.email":       "Invalid email format",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "number":
		return field + " must contain only digits"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
