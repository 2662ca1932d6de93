package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cragbase/cragbase/internal/shared/logger"
	"github.com/cragbase/cragbase/internal/shared/utils"
)

// RateLimiter is a fixed-window per-IP counter kept in Redis, shared by all
// server instances. It guards the public contribution form.
type RateLimiter struct {
	redisClient *redis.Client
	prefix      string
	limit       int
	window      time.Duration
	logger      logger.Interface
}

func NewRateLimiter(redisClient *redis.Client, prefix string, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		prefix:      prefix,
		limit:       limit,
		window:      window,
		logger:      log,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.redisClient == nil || rl.limit <= 0 {
			c.Next()
			return
		}

		bucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("%s:ip:%s:%d", rl.prefix, c.ClientIP(), bucket)
		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			// Fail open: an unavailable Redis must not take the form down.
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
