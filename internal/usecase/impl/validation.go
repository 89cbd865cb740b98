package impl

import (
	"reflect"
	"strings"

	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/errors"

	"github.com/go-playground/validator/v10"
)

// newJSONValidator reports field errors under their JSON names.
func newJSONValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

// firstValidationError converts the first failed constraint into a domain ValidationError.
func firstValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fieldErr := fieldErrs[0]
		reason := "failed " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			reason += "=" + fieldErr.Param()
		}

		return domainerrors.NewValidationError(fieldErr.Field(), reason)
	}

	return domainerrors.NewValidationError("body", err.Error())
}
