package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tipdesk/models"
	"tipdesk/utils"
)

// SuperAdminOnly guards the cross-hotel administration surface.
func SuperAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		if role != models.UserRoleSuperAdmin {
			utils.RespondError(c, http.StatusForbidden, "Super admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// HotelAdminOnly guards hotel-scoped routes: the caller must be a hotel
// manager with a hotel attached to their token.
func HotelAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		if role != models.UserRoleAdmin || HotelID(c) == 0 {
			utils.RespondError(c, http.StatusForbidden, "Hotel admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
