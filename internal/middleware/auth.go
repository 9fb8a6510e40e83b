package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/pkg/jwt"
)

// AdminOnly guards the mutation routes. The session token comes from the
// admin cookie or a Bearer header; missing, expired and tampered tokens
// all get the same 401 so callers learn nothing from the distinction.
func AdminOnly(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cfg.AdminCookieName)
		if token == "" || !jwt.IsAdminToken(token, cfg.JWTSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "message": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
