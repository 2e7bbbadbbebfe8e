// Package validator adapts go-playground/validator to Echo's Validator
// interface and translates rule violations into the validation AppError.
package validator

import (
	"fmt"
	"unicode"

	domainerrors "trove/internal/domain/errors"
	"trove/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request payload validator installed on the Echo instance.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound payload against its struct tags. Violations come
// back as ErrInvalidInput with a field-to-reason details map, so the error
// middleware renders them as a structured 400.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return errors.WithStack(err)
	}

	details := make(map[string]string, len(violations))
	for _, violation := range violations {
		details[fieldName(violation)] = reason(violation)
	}

	return domainerrors.ErrInvalidInput.WithDetails(details)
}

// fieldName converts the Go field name to its JSON-ish lowerCamel form.
func fieldName(violation validator.FieldError) string {
	name := violation.Field()
	if name == "" {
		return name
	}

	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}

func reason(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", violation.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", violation.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", violation.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", violation.Param())
	default:
		return fmt.Sprintf("failed the %q rule", violation.Tag())
	}
}
