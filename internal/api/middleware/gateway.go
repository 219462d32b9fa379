package middleware

import (
	"github.com/gin-gonic/gin"
)

// OptionalGatewayAuth trusts user info from gateway headers (X-User-ID,
// X-User-Email, X-User-Role) when present. Authentication itself is handled
// upstream; the API only carries the identity through for logging and
// tracing. Anonymous requests pass through untouched.
func OptionalGatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.GetHeader("X-User-ID")

		if userIDStr != "" {
			c.Set("user_id", userIDStr)
			c.Set("user_email", c.GetHeader("X-User-Email"))
			c.Set("user_role", c.GetHeader("X-User-Role"))
		}

		c.Next()
	}
}

// GetUserIDFromGateway retrieves the user ID from gateway headers
// Returns the string ID and a boolean indicating if it was found
func GetUserIDFromGateway(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}
