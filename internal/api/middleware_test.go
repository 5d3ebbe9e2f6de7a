package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
)

func performWithPrincipal(min auth.Role, userID string, role auth.Role) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
			c.Set("userRole", role)
		}
	}, RequireRole(min), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	t.Run("unauthenticated gets 401", func(t *testing.T) {
		w := performWithPrincipal(auth.RoleStaff, "", auth.RoleGuest)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("underprivileged gets 403", func(t *testing.T) {
		w := performWithPrincipal(auth.RoleAdmin, "user-1", auth.RoleReceptionist)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("exact role passes", func(t *testing.T) {
		w := performWithPrincipal(auth.RoleReceptionist, "user-1", auth.RoleReceptionist)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("higher role passes", func(t *testing.T) {
		w := performWithPrincipal(auth.RoleStaff, "user-1", auth.RoleSuperAdmin)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("guest blocked from staff routes", func(t *testing.T) {
		w := performWithPrincipal(auth.RoleStaff, "guest-1", auth.RoleGuest)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
