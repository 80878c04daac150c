package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/models"
	"github.com/linskybing/reserve-go/types"
)

// AuthorizeAdmin rejects non-admin principals before the handler runs. The
// services re-check the role; this just short-circuits the obvious case.
func AuthorizeAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		if claims.Role != string(models.UserRoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}

		c.Next()
	}
}
