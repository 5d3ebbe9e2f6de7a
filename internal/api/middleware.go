package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
)

// RequireRole gates a route on a minimum role. AuthRequired must run
// first so the principal is in the context.
func RequireRole(min auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		if !auth.GetRole(c).AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient privileges",
			})
			return
		}

		c.Next()
	}
}
