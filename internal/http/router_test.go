//go:build !integration

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/waitlist-service/internal/domain/dto"
	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/middleware"
	"github.com/guttosm/waitlist-service/internal/mocks"
)

func TestNewRouter_StaffRoutesRequireCredentials(t *testing.T) {
	const key = "front-desk-key"

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "guests can join", method: http.MethodPost, path: "/api/queue", body: `{"name": "Rivera", "party_size": 2}`, wantStatus: http.StatusCreated},
		{name: "guests can plan", method: http.MethodPost, path: "/api/seating/plan", body: `{"parties": []}`, wantStatus: http.StatusOK},
		{name: "list needs credentials", method: http.MethodGet, path: "/api/queue", wantStatus: http.StatusUnauthorized},
		{name: "get needs credentials", method: http.MethodGet, path: "/api/queue/1", wantStatus: http.StatusUnauthorized},
		{name: "update needs credentials", method: http.MethodPatch, path: "/api/queue/1", body: `{"status": "seated"}`, wantStatus: http.StatusUnauthorized},
		{name: "delete needs credentials", method: http.MethodDelete, path: "/api/queue/1", wantStatus: http.StatusUnauthorized},
		{name: "optimize needs credentials", method: http.MethodPost, path: "/api/queue/optimize", wantStatus: http.StatusUnauthorized},
		{name: "wrong api key", method: http.MethodGet, path: "/api/queue", headers: map[string]string{"X-API-Key": "nope"}, wantStatus: http.StatusUnauthorized},
		{name: "api key lists", method: http.MethodGet, path: "/api/queue", headers: map[string]string{"X-API-Key": key}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := new(mocks.MockQueueService)
			queue.On("Join", mock.Anything, "Rivera", 2, (*string)(nil)).Return(sampleEntry(1, model.StatusWaiting), nil).Maybe()
			queue.On("List", mock.Anything, model.EntryFilter{}).Return([]model.Entry{}, nil).Maybe()
			seating := new(mocks.MockSeatingService)
			seating.On("Plan", []model.Party{}, []model.Table(nil)).Return(model.EmptyPlan(nil), nil).Maybe()

			cfg := DefaultRouterConfig()
			cfg.QueueService = queue
			cfg.SeatingService = seating
			cfg.EnableAuth = true
			cfg.APIKeys = map[string]bool{key: true}
			router := NewRouter(NewHealthHandler(), cfg)

			w := perform(router, tt.method, tt.path, tt.body, tt.headers)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestNewRouter_BearerToken(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", mock.Anything, "good").Return(&dto.Claims{StaffID: "s1", Email: "host@example.com"}, nil)
	queue := new(mocks.MockQueueService)
	queue.On("Get", mock.Anything, int64(1)).Return(sampleEntry(1, model.StatusWaiting), nil)

	cfg := DefaultRouterConfig()
	cfg.QueueService = queue
	cfg.AuthService = auth
	cfg.EnableAuth = true
	router := NewRouter(NewHealthHandler(), cfg)

	w := perform(router, http.MethodGet, "/api/queue/1", "", map[string]string{"Authorization": "Bearer good"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	cfg := DefaultRouterConfig()
	cfg.Limiter = limiter
	router := NewRouter(NewHealthHandler(), cfg)

	for i := 0; i < 2; i++ {
		w := perform(router, http.MethodGet, "/healthz", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := perform(router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestNewRouter_Infrastructure(t *testing.T) {
	router := NewRouter(NewHealthHandler(), DefaultRouterConfig())

	w := perform(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := NewRouter(NewHealthHandler(), cfg)

	w := perform(router, http.MethodGet, "/swagger/index.html", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.CORSOrigins = []string{"http://localhost:5173"}
	router := NewRouter(NewHealthHandler(), cfg)

	w := perform(router, http.MethodOptions, "/api/queue", "", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": http.MethodPost,
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
