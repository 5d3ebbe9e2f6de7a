package auth

import "github.com/gin-gonic/gin"

// GetUserID returns the authenticated principal's ID or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserEmail returns the authenticated principal's email or empty string.
func GetUserEmail(c *gin.Context) string {
	if v, ok := c.Get("userEmail"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetRole returns the authenticated principal's role.
// Missing context defaults to guest, the lowest rank.
func GetRole(c *gin.Context) Role {
	if v, ok := c.Get("userRole"); ok {
		if r, ok := v.(Role); ok {
			return r
		}
	}
	return RoleGuest
}

// GetHotelID returns the hotel the principal is assigned to, if any.
func GetHotelID(c *gin.Context) string {
	if v, ok := c.Get("userHotelID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
