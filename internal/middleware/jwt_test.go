//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/waitlist-service/internal/domain/dto"
	"github.com/guttosm/waitlist-service/internal/mocks"
	"github.com/guttosm/waitlist-service/internal/service"
)

var testClaims = &dto.Claims{
	StaffID: "65f0c0ffee0000000000abcd",
	Email:   "host@example.com",
	Name:    "Host",
}

func TestJWTAuth(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(mockAuth *mocks.MockAuthService) {
				mockAuth.On("ValidateToken", mock.Anything, "valid-token").Return(testClaims, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   testClaims.StaffID,
		},
		{
			name:           "missing authorization header",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication token is required",
		},
		{
			name:           "invalid bearer prefix",
			authHeader:     "Token valid-token",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "empty token",
			authHeader:     "Bearer ",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication token is required",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid-token",
			setupMocks: func(mockAuth *mocks.MockAuthService) {
				mockAuth.On("ValidateToken", mock.Anything, "invalid-token").Return(nil, service.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			mockAuthService := new(mocks.MockAuthService)
			tt.setupMocks(mockAuthService)

			router.Use(RequestID(), JWTAuth(mockAuthService))
			router.GET("/test", func(c *gin.Context) {
				claims, ok := GetStaffClaims(c)
				assert.True(t, ok)
				assert.Equal(t, testClaims.Email, claims.Email)
				assert.Equal(t, testClaims.Email, c.GetString(StaffEmailKey))
				c.String(http.StatusOK, GetStaffID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockAuthService.AssertExpectations(t)
		})
	}
}

func TestStaffAuth(t *testing.T) {
	keys := map[string]bool{"desk-key": true}

	tests := []struct {
		name           string
		withService    bool
		apiKeys        map[string]bool
		setupRequest   func(*http.Request)
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedStaff  string
	}{
		{
			name:           "api key accepted",
			withService:    true,
			apiKeys:        keys,
			setupRequest:   func(r *http.Request) { r.Header.Set(APIKeyHeader, "desk-key") },
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
			expectedStaff:  apiKeyStaffID,
		},
		{
			name:           "wrong api key is not retried as bearer",
			withService:    true,
			apiKeys:        keys,
			setupRequest:   func(r *http.Request) { r.Header.Set(APIKeyHeader, "nope"); r.Header.Set("Authorization", "Bearer t") },
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "bearer token accepted",
			withService: true,
			apiKeys:     keys,
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer t")
			},
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "t").Return(testClaims, nil)
			},
			expectedStatus: http.StatusOK,
			expectedStaff:  testClaims.StaffID,
		},
		{
			name:           "no store and no key",
			apiKeys:        keys,
			setupRequest:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer t") },
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			mockAuth := new(mocks.MockAuthService)
			tt.setupMocks(mockAuth)

			var authService service.AuthService
			if tt.withService {
				authService = mockAuth
			}

			router := gin.New()
			router.Use(RequestID(), StaffAuth(authService, tt.apiKeys))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetStaffID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedStaff, w.Body.String())
			}
			mockAuth.AssertExpectations(t)
		})
	}
}
