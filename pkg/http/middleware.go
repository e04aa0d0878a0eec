package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetpanel.dev/device-console-service/pkg/models"
)

// ContextKeyUser is where RequireAuth parks the authenticated admin user.
const ContextKeyUser = "user"

func (rs *RestfulServer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := rs.Console.Auth.Authenticate(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// currentUser returns the user RequireAuth stored, nil on unprotected routes.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextKeyUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
