package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/devfolio/backend/internal/config"
)

func TestRateLimiterFailsOpenWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// nothing listens here; the limiter must step aside, not block
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	cfg := &config.Config{RateLimitRequests: 1, RateLimitDuration: time.Minute}

	router := gin.New()
	router.Use(RateLimiter(client, cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
