package validator

import (
	"testing"

	domainerrors "leadgrid/internal/domain/errors"
	"leadgrid/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" validate:"required"`
	PageSize int    `json:"page_size" validate:"omitempty,max=100"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, cv.Validate(&sampleRequest{Name: "plumbers", PageSize: 10}))
	})

	t.Run("reports the json field name", func(t *testing.T) {
		err := cv.Validate(&sampleRequest{})
		require.Error(t, err)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "name", validationErr.Field)
		assert.Equal(t, "failed required", validationErr.Reason)
	})

	t.Run("includes the constraint parameter", func(t *testing.T) {
		err := cv.Validate(&sampleRequest{Name: "x", PageSize: 500})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "page_size", validationErr.Field)
		assert.Equal(t, "failed max=100", validationErr.Reason)
	})
}
