package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string  `validate:"required,email"`
	Password string  `validate:"required,min=8"`
	Rating   float64 `validate:"gte=1,lte=5"`
	Role     string  `validate:"omitempty,oneof=user agent admin"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:    "user@example.com",
		Password: "supersecret",
		Rating:   4.5,
		Role:     "agent",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:    "not-an-email",
		Password: "short",
		Rating:   9,
		Role:     "superuser",
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Password must be at least 8 characters", formatted["Password"])
	assert.Equal(t, "Rating must be less than or equal to 5", formatted["Rating"])
	assert.Equal(t, "Role must be one of: user agent admin", formatted["Role"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Rating: 3})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", formatted["Email"])
	assert.Equal(t, "Password is required", formatted["Password"])
}

func TestFormatValidationErrorsNonValidationError(t *testing.T) {
	cv := NewValidator()
	assert.Empty(t, cv.FormatValidationErrors(assert.AnError))
}
