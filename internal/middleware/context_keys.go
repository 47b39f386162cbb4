package middleware

import "github.com/gin-gonic/gin"

// adminIDKey is the key used to store the acting admin's ID in the Gin context.
const adminIDKey = contextKey("adminID")

// GetAdminIDFromContext retrieves the acting admin's ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminIDVal, exists := c.Get(string(adminIDKey))
	if !exists {
		adminIDVal = c.Request.Context().Value(adminIDKey)
		if adminIDVal == nil {
			return "", false
		}
	}

	adminID, ok := adminIDVal.(string)
	if !ok {
		return "", false
	}

	return adminID, true
}
