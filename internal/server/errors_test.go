package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/rephrase-master/internal/entitlement"
	"github.com/jonathan/rephrase-master/internal/history"
	"github.com/jonathan/rephrase-master/internal/rephrase"
	"github.com/jonathan/rephrase-master/internal/sharing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "text", Message: "required"}
	assert.Equal(t, "validation error: text - required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"ErrValidation", &ErrValidation{Field: "style", Message: "required"}, http.StatusBadRequest},
		{"InputError", &rephrase.InputError{Message: "text is required"}, http.StatusBadRequest},
		{"InvalidStyleError", &rephrase.InvalidStyleError{Style: "pirate"}, http.StatusBadRequest},
		{"PlatformError", &sharing.PlatformError{Name: "myspace"}, http.StatusBadRequest},
		{"LimitError", &entitlement.LimitError{Limit: 5, Used: 5, Requested: 1}, http.StatusTooManyRequests},
		{"NotFoundError", &history.NotFoundError{ID: uuid.New()}, http.StatusNotFound},
		{"APICallError", &rephrase.APICallError{Message: "boom"}, http.StatusBadGateway},
		{"APICallError timeout", &rephrase.APICallError{Message: "slow", Cause: context.DeadlineExceeded}, http.StatusGatewayTimeout},
		{"Wrapped NotFoundError", fmt.Errorf("delete: %w", &history.NotFoundError{ID: uuid.New()}), http.StatusNotFound},
		{"Unknown error", assert.AnError, http.StatusInternalServerError},
		{"Nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestValidationError_UsesJSONFieldNames(t *testing.T) {
	v := newValidator()

	err := v.Struct(BatchRephraseRequest{Text: "hi"})
	require.Error(t, err)

	ve, ok := validationError(err).(*ErrValidation)
	require.True(t, ok)
	assert.Equal(t, "styles", ve.Field)
	assert.Equal(t, "required", ve.Message)
}

func TestValidationError_NonValidatorError(t *testing.T) {
	ve, ok := validationError(assert.AnError).(*ErrValidation)
	require.True(t, ok)
	assert.Equal(t, "request", ve.Field)
}
