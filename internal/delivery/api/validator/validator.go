// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request bodies and reports the first failed field by its JSON name.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a CustomValidator.
func New() *CustomValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fieldErr := fieldErrs[0]
		reason := "failed " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			reason += "=" + fieldErr.Param()
		}

		return domainerrors.NewValidationError(fieldErr.Field(), reason)
	}

	return errors.WithStack(err)
}
