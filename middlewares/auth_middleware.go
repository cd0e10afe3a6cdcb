package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tipdesk/utils"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity on the context. WebSocket clients may pass the token as a
// query parameter since browsers cannot set headers on upgrade requests.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" && c.Query("token") != "" {
			token = "Bearer " + c.Query("token")
		}

		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing")
			c.Abort()
			return
		}
		if !strings.HasPrefix(token, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(token, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid user id in token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("hotel_id", claims.HotelID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// HotelID pulls the authenticated hotel scope off the context.
func HotelID(c *gin.Context) uint {
	if v, ok := c.Get("hotel_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
