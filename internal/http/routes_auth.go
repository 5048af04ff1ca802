package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/waitlist-service/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance. A nil authService registers nothing.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	if authService == nil {
		return &AuthRoutes{}
	}
	return &AuthRoutes{handler: NewAuthHandler(authService)}
}

// RegisterRoutes registers the login route.
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	if r.handler == nil {
		return
	}
	rg.POST("/auth/login", r.handler.Login)
}
