package middleware

import (
	"net/http"
	"strings"

	"Fivestack/utils"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// AuthRequired validates the Authorization bearer token and stores the
// resolved user id on the context.
func AuthRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
		return
	}

	userID, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// CurrentUserID returns the authenticated user id set by AuthRequired.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
