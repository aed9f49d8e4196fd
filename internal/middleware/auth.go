package middleware

import (
	"net/http"

	"aerosky-service/internal/auth"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "userID"

// Authenticate guards the /api routes: a missing bearer token is 401, an
// invalid or expired one is 403. On success the user id from the token
// claims is stored on the request context.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_TOKEN",
			})
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(auth.StripBearer(header), secret)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Invalid or expired token",
				"code":  "INVALID_TOKEN",
			})
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Authenticate.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
