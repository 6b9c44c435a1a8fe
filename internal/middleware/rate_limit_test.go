// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/soundsmarket/sounds-backend/internal/config"
)

func newLimitedRouter(limit gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limit)
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine) int {
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestGeneralRateLimitThrottlesBeyondBurst(t *testing.T) {
	r := newLimitedRouter(GeneralRateLimit(config.RateLimitConfig{
		GeneralPerSecond: 1,
		GeneralBurst:     2,
	}))

	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
}

func TestAuthRateLimitThrottlesBeyondBurst(t *testing.T) {
	r := newLimitedRouter(AuthRateLimit(config.RateLimitConfig{
		AuthPerMinute: 1,
		AuthBurst:     1,
	}))

	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
}

func TestZeroRateDisablesLimiter(t *testing.T) {
	r := newLimitedRouter(GeneralRateLimit(config.RateLimitConfig{}))

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, hit(r))
	}
}
