package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/auth"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// RequireAuth accepts a bearer access token, falling back to the access cookie.
func RequireAuth(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.AccessToken(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil || claims.Type != auth.TokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

func UserID(c *gin.Context) (string, bool) {
	uid := c.GetString(ContextUserID)
	return uid, uid != ""
}
