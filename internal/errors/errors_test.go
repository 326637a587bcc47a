package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeConflict, http.StatusConflict},
		{CodeStorage, http.StatusBadGateway},
		{CodeInternal, http.StatusInternalServerError},
		{Code("bogus"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.HTTPStatus(), "code %s", tt.code)
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	err := NotFound("slot not found")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
}

func TestIs_MatchesWrappedCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, CodeStorage, "write failed")

	assert.True(t, Is(err, ErrStorage))
	assert.True(t, Is(err, cause))
}

func TestWithDetails(t *testing.T) {
	err := ValidationWithDetails("invalid request", map[string]string{"name": "required"})

	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.NotNil(t, err.Details)
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(fmt.Errorf("badger: closed"), CodeStorage, "persisting slot")
	assert.Contains(t, err.Error(), "persisting slot")
	assert.Contains(t, err.Error(), "badger: closed")
}
