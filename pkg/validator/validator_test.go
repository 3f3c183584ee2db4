package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/pkg/apperrors"
	"github.com/suteetoe/employee-service/pkg/validator"
)

func ptr(s string) *string { return &s }

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	v := validator.New()
	in := model.CreateEmployeeInput{
		FirstName:    "Ann",
		LastName:     "Lee",
		Department:   model.DepartmentIT,
		EmailAddress: ptr("ann@x.com"),
		Phone:        ptr("+20 (10) 100-1000"),
	}
	require.NoError(t, v.Struct(in))

	in.EmailAddress = nil
	in.Phone = nil
	require.NoError(t, v.Validate(in))
}

func TestStruct_FieldErrors(t *testing.T) {
	t.Parallel()

	v := validator.New()
	in := model.UpdateEmployeeInput{
		FirstName:    "",
		LastName:     strings.Repeat("x", 101),
		EmailAddress: ptr("not-an-email"),
		Phone:        ptr("call me"),
	}

	err := v.Struct(in)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalid))

	fields := apperrors.FieldErrors(err)
	require.NotNil(t, fields)
	assert.Equal(t, "is required", fields["first_name"])
	assert.Contains(t, fields["last_name"], "at most 100")
	assert.Contains(t, fields["email_address"], "valid email")
	assert.Contains(t, fields["phone"], "digits")
	assert.Contains(t, fields["department"], "must be one of")
}
