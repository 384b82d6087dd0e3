package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/geogram/map-backend-go/pkg/response"
)

// userIDKey is where the authenticated user id lands in the gin context
const userIDKey = "auth.userID"

// Auth validates a Bearer token issued by the external auth provider and
// extracts the subject as the acting user id. Token issuance itself is
// not handled here.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, _ := claims["sub"].(string); sub != "" {
				c.Set(userIDKey, sub)
			}
		}

		c.Next()
	}
}

// UserID returns the authenticated user id, or "" when the request was
// not authenticated
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
