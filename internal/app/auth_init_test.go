//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/mocks"
)

func TestSeedStaff(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.AuthConfig
		setupMock func(*mocks.MockAuthService)
		wantCall  bool
	}{
		{
			name: "creates configured account",
			cfg:  config.AuthConfig{StaffEmail: "host@example.com", StaffPassword: "password123"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("EnsureStaff", mock.Anything, "host@example.com", "password123", "Staff").Return(nil).Once()
			},
			wantCall: true,
		},
		{
			name: "store error is logged, not fatal",
			cfg:  config.AuthConfig{StaffEmail: "host@example.com", StaffPassword: "password123"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("EnsureStaff", mock.Anything, "host@example.com", "password123", "Staff").Return(errors.New("database error")).Once()
			},
			wantCall: true,
		},
		{
			name:      "no email configured",
			cfg:       config.AuthConfig{StaffPassword: "password123"},
			setupMock: func(*mocks.MockAuthService) {},
		},
		{
			name:      "no password configured",
			cfg:       config.AuthConfig{StaffEmail: "host@example.com"},
			setupMock: func(*mocks.MockAuthService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.MockAuthService)
			tt.setupMock(auth)

			seedStaff(auth, tt.cfg)

			if tt.wantCall {
				auth.AssertExpectations(t)
			} else {
				auth.AssertNotCalled(t, "EnsureStaff", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSeedStaff_WithoutAuthService(t *testing.T) {
	// Must not panic when the staff store is missing.
	seedStaff(nil, config.AuthConfig{StaffEmail: "host@example.com", StaffPassword: "password123"})
}
