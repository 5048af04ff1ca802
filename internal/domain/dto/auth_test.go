package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "host@example.com", Password: "password123"},
		},
		{
			name:      "empty email",
			request:   LoginRequest{Email: "", Password: "password123"},
			wantError: true,
			errorMsg:  "email is required",
		},
		{
			name:      "password too short",
			request:   LoginRequest{Email: "host@example.com", Password: "12345"},
			wantError: true,
			errorMsg:  "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantError {
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.errorMsg, validationErr.Message)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
