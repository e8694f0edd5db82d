package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookify/models"
	"bookify/utils"
)

// Context keys set by the auth boundary. The scheduling engine trusts
// these and only performs the ownership/role checks of its operations.
const (
	ContextPrincipalID = "principalID"
	ContextRole        = "role"
)

// AuthMiddleware extracts the authenticated principal from a bearer
// token and stores (principalID, role) on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing authentication token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		principalID, role, err := utils.ExtractPrincipalFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(ContextPrincipalID, principalID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireProvider aborts unless the authenticated principal is a
// provider.
func RequireProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != models.RoleProvider {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "provider role required"})
			return
		}
		c.Next()
	}
}

// RequireUser aborts unless the authenticated principal is a user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != models.RoleUser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "user role required"})
			return
		}
		c.Next()
	}
}

// Principal returns the authenticated principal id and role.
func Principal(c *gin.Context) (string, string) {
	return c.GetString(ContextPrincipalID), c.GetString(ContextRole)
}
