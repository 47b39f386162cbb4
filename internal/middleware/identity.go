package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminIDHeader carries the acting admin's user ID, set by the authenticating
// proxy in front of this service.
const adminIDHeader = "X-Admin-ID"

// AdminIdentity extracts the acting admin's ID from the request header and
// stores it in the context. Requests without an identity are rejected before
// reaching any handler.
func AdminIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetHeader(adminIDHeader)
		if adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
			return
		}
		c.Set(string(adminIDKey), adminID)
		c.Next()
	}
}
