package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suteetoe/employee-service/pkg/apperrors"
)

func TestCodesAndStatus(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	storage := apperrors.Storage(cause, "failed to create employee")
	wrapped := fmt.Errorf("create: %w", storage)

	assert.True(t, apperrors.IsCode(wrapped, apperrors.CodeStorage))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, http.StatusInternalServerError, apperrors.HTTPStatus(wrapped))
	assert.Equal(t, "internal server error", apperrors.PublicMessage(wrapped))

	conflict := apperrors.New(apperrors.CodeConflict, "email taken")
	assert.Equal(t, http.StatusConflict, apperrors.HTTPStatus(conflict))
	assert.Equal(t, "email taken", apperrors.PublicMessage(conflict))

	assert.Equal(t, http.StatusNotFound, apperrors.HTTPStatus(apperrors.New(apperrors.CodeNotFound, "gone")))
	assert.Equal(t, apperrors.CodeUnknown, apperrors.CodeOf(cause))
	assert.False(t, apperrors.IsCode(nil, apperrors.CodeUnknown))
}

func TestValidation(t *testing.T) {
	t.Parallel()

	err := apperrors.Validation(map[string]string{"last_name": "is required", "first_name": "is required"})
	assert.Equal(t, http.StatusUnprocessableEntity, apperrors.HTTPStatus(err))
	assert.Equal(t, "invalid: validation failed (first_name: is required; last_name: is required)", err.Error())
	assert.Len(t, apperrors.FieldErrors(fmt.Errorf("wrap: %w", err)), 2)
	assert.Nil(t, apperrors.FieldErrors(apperrors.New(apperrors.CodeConflict, "x")))
}
