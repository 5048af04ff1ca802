package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/waitlist-service/internal/middleware"
	"github.com/guttosm/waitlist-service/internal/service"
)

// QueueRoutes handles waitlist route registration.
type QueueRoutes struct {
	handler *QueueHandler
	stream  Subscriber
}

// NewQueueRoutes creates a new QueueRoutes instance.
func NewQueueRoutes(queue service.QueueService, seating service.SeatingService, stream Subscriber) *QueueRoutes {
	return &QueueRoutes{
		handler: NewQueueHandler(queue, seating),
		stream:  stream,
	}
}

// RegisterRoutes registers the queue routes. Joining is open to guests; every
// other queue route is staff-only when auth is enabled.
func (r *QueueRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if r.stream != nil {
		rg.GET("/queue/stream", NewStreamHandler(r.stream, cfg.StreamKeepalive).Stream)
	}

	queue := rg.Group("/queue", middleware.Timeout(cfg.RequestTimeout))
	queue.POST("", r.handler.Join)

	staff := queue.Group("", staffMiddleware(cfg)...)
	staff.GET("", r.handler.List)
	staff.POST("/optimize", r.handler.Optimize)
	staff.GET("/:id", r.handler.Get)
	staff.PATCH("/:id", r.handler.UpdateStatus)
	staff.DELETE("/:id", r.handler.Delete)
}
