package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
		code   Code
	}{
		{NotFound("missing"), http.StatusNotFound, CodeNotFound},
		{Unauthorized("nope"), http.StatusUnauthorized, CodeUnauthorized},
		{Forbidden("nope"), http.StatusForbidden, CodeForbidden},
		{InvalidState("bad state"), http.StatusBadRequest, CodeInvalidState},
		{Conflict("taken"), http.StatusConflict, CodeConflict},
		{Validation("invalid"), http.StatusBadRequest, CodeValidation},
		{External("provider down"), http.StatusBadGateway, CodeExternal},
		{Internal("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode)
		assert.Equal(t, tt.code, tt.err.Code)
		assert.NotEmpty(t, tt.err.Error())
	}
}

func TestFrom(t *testing.T) {
	t.Run("direct value", func(t *testing.T) {
		appErr, ok := From(NotFound("missing"))
		assert.True(t, ok)
		assert.Equal(t, CodeNotFound, appErr.Code)
	})

	t.Run("wrapped value", func(t *testing.T) {
		wrapped := fmt.Errorf("loading booking: %w", Conflict("slot taken"))
		appErr, ok := From(wrapped)
		assert.True(t, ok)
		assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := From(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestIs(t *testing.T) {
	assert.True(t, Is(NotFound("missing"), CodeNotFound))
	assert.False(t, Is(NotFound("missing"), CodeConflict))
	assert.False(t, Is(errors.New("boom"), CodeInternal))
}
