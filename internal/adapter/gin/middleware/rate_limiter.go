package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// tokenBucketScript refills and drains one bucket atomically.
// Data structure: {last_refill, tokens} stored in a Redis hash.
const tokenBucketScript = `
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])

local bucket = redis.call('HMGET', key, 'last_refill', 'tokens')
local last_refill = tonumber(bucket[1]) or now
local tokens = tonumber(bucket[2]) or capacity

local elapsed = math.max(0, now - last_refill)
tokens = math.min(capacity, tokens + elapsed * rate)

local allowed = 0
if tokens >= requested then
	tokens = tokens - requested
	allowed = 1
end

redis.call('HMSET', key, 'last_refill', now, 'tokens', tokens)
redis.call('EXPIRE', key, 60)
return allowed
`

// RateLimiterConfig holds token-bucket parameters.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	BurstCapacity     int
	Enabled           bool
}

// RateLimiter is a Redis-backed token bucket keyed per method, path and
// client IP. Redis failures fail open: throttling is an optimization, not a
// correctness requirement.
type RateLimiter struct {
	client *redis.Client
	cfg    RateLimiterConfig
	log    *zap.Logger
}

// NewRateLimiter creates a rate limiter. A nil client disables it.
func NewRateLimiter(client *redis.Client, cfg RateLimiterConfig, log *zap.Logger) *RateLimiter {
	return &RateLimiter{client: client, cfg: cfg, log: log}
}

// Allow reports whether one more request under key may proceed.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := float64(time.Now().UnixNano()) / float64(time.Second)

	allowed, err := rl.client.Eval(ctx, tokenBucketScript, []string{key},
		rl.cfg.RequestsPerSecond,
		rl.cfg.BurstCapacity,
		now,
		1,
	).Int64()
	if err != nil {
		return false, err
	}

	return allowed == 1, nil
}

// RateLimit returns middleware throttling requests through the limiter.
// Disabled or nil limiters pass everything through.
func RateLimit(rl *RateLimiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.client == nil || !rl.cfg.Enabled {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:tb:%s:%s:%s", c.Request.Method, c.Request.URL.Path, c.ClientIP())

		allowed, err := rl.Allow(c.Request.Context(), key)
		if err != nil {
			// Fail open on Redis errors
			log.Warn("rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
