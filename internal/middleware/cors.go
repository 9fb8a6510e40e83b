package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/config"
)

// CORS restricts browser callers to the configured origins. Credentials
// are always allowed because the admin session rides a cookie, so the
// Allow-Origin header must echo a concrete origin rather than "*".
func CORS(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := normalizeOrigin(c.Request.Header.Get("Origin"))

		h := c.Writer.Header()
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		h.Set("Access-Control-Max-Age", "86400")

		if origin != "" && originAllowed(cfg, origin) {
			h.Set("Access-Control-Allow-Origin", origin)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(cfg *config.Config, origin string) bool {
	for _, allowed := range cfg.AllowedOrigins {
		if origin == normalizeOrigin(allowed) {
			return true
		}
	}
	// local frontends run on shifting ports during development
	return cfg.Env == "development"
}

// normalizeOrigin strips whitespace and trailing slashes so configured
// values match what browsers actually send.
func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/")
}
