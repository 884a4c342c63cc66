package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRouter(rdb *redis.Client, cfg RateLimitConfig) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", RateLimiter(rdb, cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return r
}

func loginFrom(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = ip + ":1234"
	return req
}

func TestRateLimiter_WithoutRedis(t *testing.T) {
	r := limitedRouter(nil, RateLimitConfig{Limit: 5, Window: 15 * time.Minute})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, serve(r, loginFrom("192.168.1.1")).Code, "request %d", i+1)
	}
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	buf := captureSecurityLog(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	r := limitedRouter(rdb, RateLimitConfig{Limit: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, serve(r, loginFrom("192.168.1.1")).Code)
	}
	w := serve(r, loginFrom("192.168.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, w.Body.String())
	assert.Contains(t, buf.String(), "RATE_LIMIT_EXCEEDED")

	// other clients are counted separately
	assert.Equal(t, http.StatusOK, serve(r, loginFrom("192.168.1.2")).Code)

	require.NoError(t, ResetRateLimit(context.Background(), rdb, "192.168.1.1", "/auth/login"))
	assert.Equal(t, http.StatusOK, serve(r, loginFrom("192.168.1.1")).Code)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("ratelimit:/auth/login:192.168.1.2"))
}

func TestRateLimiter_CommandsSent(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	key := "ratelimit:/auth/login:10.0.0.1"
	mock.ExpectIncr(key).SetVal(6)
	mock.ExpectExpire(key, 15*time.Minute).SetVal(true)

	w := serve(limitedRouter(rdb, RateLimitConfig{}), loginFrom("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_RedisErrorFailsOpen(t *testing.T) {
	captureSecurityLog(t)
	rdb, mock := redismock.NewClientMock()
	key := "ratelimit:/auth/login:10.0.0.1"
	mock.ExpectIncr(key).SetErr(assert.AnError)
	mock.ExpectExpire(key, 15*time.Minute).SetErr(assert.AnError)

	w := serve(limitedRouter(rdb, RateLimitConfig{}), loginFrom("10.0.0.1"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetRateLimit_NoRedis(t *testing.T) {
	assert.Error(t, ResetRateLimit(context.Background(), nil, "192.168.1.1", "/test"))
}
