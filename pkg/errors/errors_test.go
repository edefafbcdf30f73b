package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{InvalidInput("bad"), http.StatusBadRequest},
		{Conflict("duplicate"), http.StatusBadRequest},
		{Unauthenticated("no token"), http.StatusUnauthorized},
		{Forbidden("nope"), http.StatusForbidden},
		{NotFound("order"), http.StatusNotFound},
		{Internal(fmt.Errorf("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus(), "code %d", tt.err.Code)
	}
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "appointment not found", NotFound("appointment").Message)
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(fmt.Errorf("wrapped: %w", Forbidden("nope")))
	assert.True(t, ok)
	assert.Equal(t, ErrForbidden, appErr.Code)

	_, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(Conflict("dup"), ErrConflict))
	assert.False(t, IsCode(Conflict("dup"), ErrNotFound))
	assert.False(t, IsCode(nil, ErrConflict))
}
