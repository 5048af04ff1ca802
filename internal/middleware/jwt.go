package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/waitlist-service/internal/domain/dto"
	"github.com/guttosm/waitlist-service/internal/i18n"
	"github.com/guttosm/waitlist-service/internal/service"
)

// Context keys set by the staff authentication middlewares.
const (
	StaffIDKey     = "staff_id"
	StaffEmailKey  = "staff_email"
	StaffClaimsKey = "staff_claims"
)

// apiKeyStaffID identifies requests authenticated by API key rather than a staff login.
const apiKeyStaffID = "api-key"

// JWTAuth returns a middleware that validates staff bearer tokens.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}
		if strings.TrimSpace(tokenString) == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(StaffIDKey, claims.StaffID)
		c.Set(StaffEmailKey, claims.Email)
		c.Set(StaffClaimsKey, claims)
		c.Next()
	}
}

// StaffAuth accepts either a configured API key or a staff bearer token.
// A nil authService leaves API keys as the only way in.
func StaffAuth(authService service.AuthService, apiKeys map[string]bool) gin.HandlerFunc {
	var bearer gin.HandlerFunc
	if authService != nil {
		bearer = JWTAuth(authService)
	}
	keys := APIKeyAuth(apiKeys)

	return func(c *gin.Context) {
		if len(apiKeys) > 0 && apiKey(c) != "" {
			keys(c)
			return
		}
		if bearer == nil {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		bearer(c)
	}
}

// GetStaffID returns the authenticated staff id, or "" for anonymous requests.
func GetStaffID(c *gin.Context) string {
	return c.GetString(StaffIDKey)
}

// GetStaffClaims returns the token claims set by JWTAuth.
func GetStaffClaims(c *gin.Context) (*dto.Claims, bool) {
	v, ok := c.Get(StaffClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*dto.Claims)
	return claims, ok
}
