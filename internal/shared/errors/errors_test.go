package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_MapsTypeToStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("bad"), http.StatusBadRequest},
		{NewNotFoundError("missing"), http.StatusNotFound},
		{NewConflictError("taken"), http.StatusConflict},
		{NewUnauthorizedError("no session"), http.StatusUnauthorized},
		{NewInternalError("boom"), http.StatusInternalServerError},
		{NewUnavailableError("breaker open"), http.StatusServiceUnavailable},
		{NewTimeoutError("slow router"), http.StatusGatewayTimeout},
		{NewDeviceAuthError("rejected"), http.StatusUnauthorized},
		{NewDeviceUnreachableError("no route"), http.StatusBadGateway},
		{New(ErrorType("mystery"), "?"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Type), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Code)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "not_found: client not found", NewNotFoundError("client not found").Error())
	assert.Equal(t,
		"validation_error: invalid date (due_date)",
		NewValidationError("invalid date", "due_date", "ignored").Error(),
	)
}

func TestGetAppError_UnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("load invoice: %w", NewNotFoundError("invoice not found"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.Equal(t, "invoice not found", GetAppError(wrapped).Message)

	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
	assert.False(t, IsType(nil, ErrorTypeNotFound))
}
