package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-contact-form/internal/delivery/http/response"
	"go-contact-form/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per second, per key
	RPS float64
	// Number of requests that can exceed the rate at once
	Burst int
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// How long an unused key keeps its limiter
	IdleTTL time.Duration
}

// rateLimitEntry tracks the token bucket of one key
type rateLimitEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	mu       sync.Mutex
}

// RateLimiter keeps one token bucket per client key
type RateLimiter struct {
	config  RateLimitConfig
	entries sync.Map // key -> *rateLimitEntry
}

// DefaultRateLimitConfig returns sensible defaults for the form API
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RPS:     10,
		Burst:   20,
		IdleTTL: 10 * time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = 10 * time.Minute
	}
	return &RateLimiter{config: config}
}

// Allow takes a token for key and reports the tokens left
func (rl *RateLimiter) Allow(key string, now time.Time) (bool, int) {
	entryI, _ := rl.entries.LoadOrStore(key, &rateLimitEntry{
		limiter: rate.NewLimiter(rate.Limit(rl.config.RPS), rl.config.Burst),
	})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.lastSeen = now

	allowed := entry.limiter.AllowN(now, 1)
	remaining := int(entry.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining
}

// Cleanup drops limiters that have been idle longer than IdleTTL
func (rl *RateLimiter) Cleanup(now time.Time) {
	rl.entries.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.Sub(entry.lastSeen) > rl.config.IdleTTL {
			rl.entries.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}

// StartCleanup runs Cleanup periodically until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(rl.config.IdleTTL)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				rl.Cleanup(now)
			}
		}
	}()
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.Allow(rl.config.KeyFunc(c), time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(1 / rl.config.RPS)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			requestID, _ := c.Get("RequestID")
			logger.Log.Warn("Rate limit exceeded",
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", requestID,
			)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
