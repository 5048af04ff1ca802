package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/waitlist-service/internal/service"
)

// SeatingRoutes handles stateless planning route registration.
type SeatingRoutes struct {
	handler *SeatingHandler
}

// NewSeatingRoutes creates a new SeatingRoutes instance.
func NewSeatingRoutes(seating service.SeatingService) *SeatingRoutes {
	return &SeatingRoutes{handler: NewSeatingHandler(seating)}
}

// RegisterRoutes registers the seating routes.
func (r *SeatingRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	seating := rg.Group("/seating")
	seating.POST("/plan", r.handler.Plan)
	seating.GET("/tables", r.handler.Tables)
}
