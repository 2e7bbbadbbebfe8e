package validator

import (
	"testing"

	domainerrors "trove/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate_ValidPayload(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "longenough",
	})

	assert.NoError(t, err)
}

func TestValidate_ViolationsBecomeInvalidInput(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:     "Ada",
		Email:    "not-an-email",
		Password: "short",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeInvalidInput, appErr.ErrorCode())

	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email address", details["email"])
	assert.Equal(t, "must be at least 8", details["password"])
}

func TestValidate_FieldNamesAreLowerCamel(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{Email: "ada@example.com", Password: "longenough"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	_, hasName := details["name"]
	assert.True(t, hasName)
}
