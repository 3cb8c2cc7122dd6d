package validator

import (
	"testing"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email      string   `json:"email" validate:"required,email"`
	Facilities []string `json:"facilities" validate:"required,min=1"`
	Stars      int      `json:"starRating" validate:"min=1,max=5"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Email: "a@b.co", Facilities: []string{"Spa"}, Stars: 3}))

	err := Struct(sample{Email: "nope", Stars: 7})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, "must be a valid email", appErr.Fields["email"])
	assert.Equal(t, "is required", appErr.Fields["facilities"])
	assert.Equal(t, "must be at most 5", appErr.Fields["starRating"])
	assert.Equal(t, "email must be a valid email", appErr.Message)
}

func TestValidateDateRange(t *testing.T) {
	from, to, err := ValidateDateRange("2024-05-01", "2024-05-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), to)

	_, _, err = ValidateDateRange("2024-05-03", "2024-05-01")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, _, err = ValidateDateRange("05/01/2024", "2024-05-01")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(0))
	assert.True(t, errors.HasCode(ValidateAmount(-1), errors.ErrCodeInvalidAmount))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("owner@hulu.et"))
	assert.False(t, IsValidEmail("owner@"))
}
