package middleware

import (
	"net/http"
	"strings"

	"github.com/ashikraj78/menuMind/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token against the identity provider
// and attaches the resolved user to the request context. Every protected
// request costs one provider round trip; nothing is cached.
func AuthMiddleware(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		user, err := verifier.GetUser(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authentication credentials"})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Next()
	}
}
