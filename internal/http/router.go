package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/waitlist-service/internal/metrics"
	"github.com/guttosm/waitlist-service/internal/middleware"
	"github.com/guttosm/waitlist-service/internal/service"
)

// StreamPath is the event stream route. It is excluded from gzip and request timeouts.
const StreamPath = "/api/queue/stream"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	QueueService   service.QueueService
	SeatingService service.SeatingService
	// AuthService enables staff login and bearer tokens. Nil leaves API keys as the only staff credential.
	AuthService service.AuthService
	// Notifier feeds the event stream. Nil disables the stream route.
	Notifier Subscriber
	// Limiter throttles every request. Nil disables rate limiting.
	Limiter         middleware.Limiter
	APIKeys         map[string]bool
	EnableAuth      bool
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
	StreamKeepalive time.Duration
	RequestTimeout  time.Duration
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		EnableAuth:      false,
		StreamKeepalive: DefaultStreamKeepalive,
		RequestTimeout:  middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router for the waitlist service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	routes := []RouteGroup{
		NewAuthRoutes(cfg.AuthService),
		NewQueueRoutes(cfg.QueueService, cfg.SeatingService, cfg.Notifier),
		NewSeatingRoutes(cfg.SeatingService),
	}
	for _, r := range routes {
		r.RegisterRoutes(api, &cfg)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(StreamPath),
		middleware.RequestLogger("/healthz", "/readyz", "/metrics"),
		middleware.ErrorHandler(),
	)

	if cfg.Limiter != nil {
		router.Use(middleware.RateLimit(cfg.Limiter))
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// staffMiddleware returns the handlers guarding staff routes, or nil when auth is off.
func staffMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	if !cfg.EnableAuth {
		return nil
	}
	return []gin.HandlerFunc{middleware.StaffAuth(cfg.AuthService, cfg.APIKeys)}
}
