package middleware

import (
	"net/http"
	"strings"

	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAuth checks for a valid bearer token and stores the owning user id
// in the request context under "user_id".
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header is required",
			})
			c.Abort()
			return
		}

		// Check if the authorization header has the correct format
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header must be in the format 'Bearer {token}'",
			})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid token",
			})
			c.Abort()
			return
		}

		// Add user ID to the context for use in handlers
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
